package preview

import (
	"context"

	"github.com/nightswitch/fmcore/pkg/cache"
	"github.com/nightswitch/fmcore/pkg/commands"
	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/event"
)

// VideoProducer ensures a thumbnail exists in thumbCache (generating it via
// the video-thumbnailer collaborator if missing), then runs the same
// decode/resize pipeline as ImageProducer against the cached frame.
func VideoProducer(previewCfg config.PreviewConfig, thumbCache *cache.Cache, runner *commands.OSCommand, commandTemplate string, viewport func() Viewport) Producer {
	return func(ctx context.Context, path string) (event.PreviewData, error) {
		dest, err := thumbCache.GetOrCreate(path, func(dest string) error {
			return runner.VideoThumbnail(ctx, commandTemplate, path, dest)
		})
		if err != nil {
			return event.PreviewData{}, err
		}

		encoded, err := decodeAndResize(previewCfg, nil, viewport(), dest)
		if err != nil {
			return event.PreviewData{}, err
		}
		return event.PreviewData{Kind: event.PreviewImage, Image: encoded}, nil
	}
}
