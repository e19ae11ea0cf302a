package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/kjkrol/sdlskel/internal/config"
	"github.com/kjkrol/sdlskel/internal/logging"
	"github.com/kjkrol/sdlskel/internal/platform"
	"github.com/kjkrol/sdlskel/internal/title"
	"github.com/kjkrol/sdlskel/pkg/boot"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(platform.New, os.Stderr))
}

// run wires config, logging and the backend built by newPlatform into the bootstrap
// and returns the exit status.
func run(newPlatform func(*zap.Logger) platform.Platform, stderr io.Writer) int {
	conf, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return boot.ExitFailure
	}
	logger, err := logging.New(conf.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return boot.ExitFailure
	}
	defer logger.Sync()

	windowTitle, err := title.Render(conf.Title, conf.ProjectName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return boot.ExitFailure
	}

	strategy := boot.DrainAll()
	if conf.DrainMax > 0 {
		strategy = boot.DrainMax(conf.DrainMax)
	}

	app := boot.New(newPlatform(logger), boot.Config{
		Window:      conf.Window(windowTitle),
		Strategy:    strategy,
		IdleSleep:   conf.IdleSleep(),
		Diagnostics: stderr,
		Logger:      logger,
	})
	return app.Run()
}
