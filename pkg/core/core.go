// Package core wires together the preview engine, the task scheduler, and
// their shared collaborators into the single composition root a front end
// embeds. Nothing here renders anything — that's the TUI's job, out of this
// core's scope (see spec.md §1).
package core

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/nightswitch/fmcore/pkg/cache"
	"github.com/nightswitch/fmcore/pkg/commands"
	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/event"
	"github.com/nightswitch/fmcore/pkg/mime"
	"github.com/nightswitch/fmcore/pkg/preview"
	"github.com/nightswitch/fmcore/pkg/tasks"
)

// Collaborator command templates. These would ordinarily come from
// UserConfig (alongside Preview/Theme/Open/Layout); they're broken out as
// named defaults here because spec.md's config model doesn't carry them and
// the alternative is hardcoding them inline at every call site.
const (
	defaultJSONCommand           = "jq '.' {{.path}}"
	defaultArchiveListCommand    = "bsdtar -tf {{.path}}"
	defaultVideoThumbnailCommand = "ffmpeg -y -ss 00:00:01 -i {{.input}} -frames:v 1 {{.output}}"
)

// Core is the assembled set of long-lived collaborators: a preview Engine
// and a task Facade, both backed by one OSCommand runner and one on-disk
// derived-artifact cache.
type Core struct {
	Log     *logrus.Entry
	Config  *config.AppConfig
	Engine  *preview.Engine
	Tasks   *tasks.Facade
	Events  chan event.Event
	Cache   *cache.Cache
	Runner  *commands.OSCommand
	cancel  context.CancelFunc
}

// TermSize reports the current terminal size (cols, rows); supplied by the
// embedding front end since this core treats the terminal itself as an
// external collaborator.
type TermSize func() (int, int)

// New assembles a Core around appConfig. It creates the channel the preview
// engine and task scheduler publish onto and exposes it as Core.Events; the
// caller owns draining it.
func New(appConfig *config.AppConfig, log *logrus.Entry, termSize TermSize) (*Core, error) {
	thumbDir := filepath.Join(appConfig.ConfigDir, "cache", "thumbnails")
	thumbCache, err := cache.New(thumbDir)
	if err != nil {
		return nil, err
	}

	runner := commands.NewOSCommand(log)
	events := make(chan event.Event, 64)

	userConfig := appConfig.UserConfig
	layout := userConfig.Layout
	previewCfg := userConfig.Preview
	themeFile := userConfig.Theme.Preview.SyntectTheme

	ctx, cancel := context.WithCancel(context.Background())

	engine := preview.New(buildDispatch(runner, thumbCache, previewCfg, themeFile, layout, events, termSize), events, termSize, layout)

	scheduler := tasks.NewScheduler(ctx, log, runner, thumbCache, events)
	facade := tasks.NewFacade(scheduler, userConfig.Open, layout)

	return &Core{
		Log:    log,
		Config: appConfig,
		Engine: engine,
		Tasks:  facade,
		Events: events,
		Cache:  thumbCache,
		Runner: runner,
		cancel: cancel,
	}, nil
}

// buildDispatch wires every producer to the mime.Kind it handles. The
// engine itself never references a concrete producer type — this is the
// one place that assembly happens.
func buildDispatch(runner *commands.OSCommand, thumbCache *cache.Cache, previewCfg config.PreviewConfig, themeFile string, layout config.LayoutConfig, events chan<- event.Event, termSize TermSize) preview.Dispatch {
	viewport := func() preview.Viewport {
		cols, rows := termSize()
		return preview.Size(cols, rows, layout)
	}
	rows := func() int {
		return viewport().Rows
	}

	return preview.Dispatch{
		mime.Dir:     preview.FolderProducer(events),
		mime.JSON:    preview.JSONProducer(runner, defaultJSONCommand, rows),
		mime.Text:    preview.TextProducer(previewCfg, themeFile, rows),
		mime.Image:   preview.ImageProducer(previewCfg, thumbCache, viewport),
		mime.Video:   preview.VideoProducer(previewCfg, thumbCache, runner, defaultVideoThumbnailCommand, viewport),
		mime.Archive: preview.ArchiveProducer(runner, defaultArchiveListCommand, rows),
	}
}

// Close stops the task scheduler's progress pump.
func (c *Core) Close() {
	c.cancel()
}
