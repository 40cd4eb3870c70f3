package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	yaml "github.com/jesseduffield/yaml"
	"github.com/samber/lo"

	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/core"
	fmlog "github.com/nightswitch/fmcore/pkg/log"
	"github.com/nightswitch/fmcore/pkg/utils"
)

const DEFAULT_VERSION = "unversioned"

var (
	commit  string
	version = DEFAULT_VERSION
	date    string

	configFlag    = false
	debuggingFlag = false
)

func main() {
	updateBuildInfo()

	info := fmt.Sprintf(
		"%s\nDate: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("fmcore")
	flaggy.SetDescription("Concurrent preview engine and task scheduler core for a terminal file manager")

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "a boolean")
	flaggy.SetVersion(info)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		if err := encoder.Encode(config.GetDefaultConfig()); err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	appConfig, err := config.NewAppConfig("fmcore", version, commit, date, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	logger := fmlog.NewLogger(appConfig)

	c, err := core.New(appConfig, logger, func() (int, int) { return 80, 24 })
	if err != nil {
		newErr := errors.Wrap(err, 0)
		log.Fatalf("failed to build core\n\n%s", newErr.ErrorStack())
	}
	defer c.Close()

	// A front end wires c.Engine.Go/Reset against selection changes and
	// drains c.Events; none of that is this binary's job (see spec.md §1).
	logger.Info("core assembled")
}

func updateBuildInfo() {
	if version == DEFAULT_VERSION {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			revision, ok := lo.Find(buildInfo.Settings, func(setting debug.BuildSetting) bool {
				return setting.Key == "vcs.revision"
			})
			if ok {
				commit = revision.Value
				// if fmcore was built from source we'll show the version as the
				// abbreviated commit hash
				version = utils.SafeTruncate(revision.Value, 7)
			}

			// if version hasn't been set we assume that neither has the date
			t, ok := lo.Find(buildInfo.Settings, func(setting debug.BuildSetting) bool {
				return setting.Key == "vcs.time"
			})
			if ok {
				date = t.Value
			}
		}
	}
}
