package main

import (
	"fmt"
	"os"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/config"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
	"github.com/GriffinCanCode/mfdash/internal/shared/paths"
)

// exitMissingCredentials distinguishes configuration errors from run failures.
const exitMissingCredentials = 2

func loadConfig(dev bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logging.Logger {
	lc := logging.DefaultConfig()
	if cfg.Logging.Development {
		lc = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		lc.Level = cfg.Logging.Level
	}

	logger, err := logging.New(lc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q, using the default\n", cfg.Logging.Level)
		if cfg.Logging.Development {
			return logging.NewDevelopment()
		}
		return logging.NewDefault()
	}
	return logger
}

// resolvePaths anchors relative file locations at root.
func resolvePaths(cfg *config.Config, root string) {
	cfg.Output.DataPath = paths.Resolve(root, cfg.Output.DataPath)
	cfg.Output.ScreenshotPath = paths.Resolve(root, cfg.Output.ScreenshotPath)
	cfg.Output.SnapshotPath = paths.Resolve(root, cfg.Output.SnapshotPath)
	cfg.Output.MetricsTextfile = paths.Resolve(root, cfg.Output.MetricsTextfile)
	cfg.Pipeline.SelectorsFile = paths.Resolve(root, cfg.Pipeline.SelectorsFile)
	cfg.Server.StaticDir = paths.Resolve(root, cfg.Server.StaticDir)
}

func browserOptions(cfg config.BrowserConfig) browser.Options {
	return browser.Options{
		Headless:          cfg.Headless,
		NoSandbox:         cfg.NoSandbox,
		ExecPath:          cfg.ExecPath,
		UserAgent:         cfg.UserAgent,
		Width:             cfg.Width,
		Height:            cfg.Height,
		NavigationTimeout: cfg.NavTimeout,
	}
}
