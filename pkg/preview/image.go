package preview

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/nightswitch/fmcore/pkg/cache"
	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/event"
)

// pixelRatio approximates the terminal's pixel-per-cell ratio used to turn
// a (cols, rows) viewport into a pixel budget. Terminals differ; this is a
// conservative default rather than a queried value, since this core treats
// the terminal image transport itself as an external collaborator.
const (
	pixelRatioW = 8.0
	pixelRatioH = 16.0
)

// ImageProducer decodes and, if oversized, down-scales an image to fit the
// viewport's pixel budget (itself clamped by the configured max
// width/height), then re-encodes it for the terminal's inline-image
// transport. thumbCache, when non-nil, is consulted first: if a cached
// thumbnail exists for path, it's used as the decode source instead of the
// original. VideoProducer runs the same decode/resize step directly on its
// cached thumbnail path.
func ImageProducer(previewCfg config.PreviewConfig, thumbCache *cache.Cache, viewport func() Viewport) Producer {
	return func(ctx context.Context, path string) (event.PreviewData, error) {
		encoded, err := decodeAndResize(previewCfg, thumbCache, viewport(), path)
		if err != nil {
			return event.PreviewData{}, err
		}
		return event.PreviewData{Kind: event.PreviewImage, Image: encoded}, nil
	}
}

func decodeAndResize(previewCfg config.PreviewConfig, thumbCache *cache.Cache, vp Viewport, path string) ([]byte, error) {
	source := path
	if thumbCache != nil {
		if cached := thumbCache.Path(path); fileExists(cached) {
			source = cached
		}
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	budgetW := minInt(int(float64(vp.Cols)*pixelRatioW), previewCfg.MaxWidth)
	budgetH := minInt(int(float64(vp.Rows)*pixelRatioH), previewCfg.MaxHeight)

	bounds := img.Bounds()
	if bounds.Dx() > budgetW || bounds.Dy() > budgetH {
		img = imaging.Fit(img, budgetW, budgetH, imaging.Linear)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
