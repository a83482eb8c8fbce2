package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/domain/pipeline"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/config"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
	"github.com/GriffinCanCode/mfdash/internal/providers/scraper"
)

type scrapeCmd struct {
	output    string
	selectors string
	snapshot  string
	root      string
	headful   bool
	dev       bool
}

func (*scrapeCmd) Name() string     { return "scrape" }
func (*scrapeCmd) Synopsis() string { return "sign in, scrape the account pages and write the dataset" }
func (*scrapeCmd) Usage() string {
	return `mfsync scrape [-o <path>] [-selectors <file>] [-snapshot <file>] [-root <dir>] [-headful] [-dev]

  Runs one sync: signs in with MF_EMAIL/MF_PASSWORD, visits the portfolio,
  history and cashflow pages, and writes the aggregated JSON document.
  On failure a screenshot of the browser is saved for diagnosis.
`
}

func (c *scrapeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output path for the dataset (overrides MF_OUTPUT_PATH).")
	f.StringVar(&c.selectors, "selectors", "", "YAML file overriding the built-in selectors (overrides MF_SELECTORS_FILE).")
	f.StringVar(&c.snapshot, "snapshot", "", "Also dump the sanitized page HTML here on failure.")
	f.StringVar(&c.root, "root", "", "Directory that relative output and selector paths are resolved against.")
	f.BoolVar(&c.headful, "headful", false, "Show the browser window.")
	f.BoolVar(&c.dev, "dev", false, "Human-readable debug logging.")
}

func (c *scrapeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	c.apply(cfg)

	logger := newLogger(cfg)
	defer logger.Sync()

	if err := cfg.Credentials.Validate(); err != nil {
		logger.Error("Cannot start sync", zap.Error(err))
		return exitMissingCredentials
	}

	sel, err := scraper.LoadSelectors(cfg.Pipeline.SelectorsFile)
	if err != nil {
		logger.Error("Failed to load selectors", zap.String("file", cfg.Pipeline.SelectorsFile), zap.Error(err))
		return subcommands.ExitFailure
	}

	launcher := browser.NewChromeLauncher(browserOptions(cfg.Browser), logger.Component("browser"))
	runner := pipeline.NewRunner(cfg, launcher, scraper.NewExtractor(sel), monitoring.NewMetrics(), logger)

	report, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			return exitMissingCredentials
		}
		logger.Error("Sync failed", zap.Error(err), zap.String("screenshot", cfg.Output.ScreenshotPath))
		return subcommands.ExitFailure
	}

	fmt.Printf("wrote %s (%s)\n", report.OutputPath, report.RunID)
	return subcommands.ExitSuccess
}

func (c *scrapeCmd) apply(cfg *config.Config) {
	if c.output != "" {
		cfg.Output.DataPath = c.output
	}
	if c.selectors != "" {
		cfg.Pipeline.SelectorsFile = c.selectors
	}
	if c.snapshot != "" {
		cfg.Output.SnapshotPath = c.snapshot
	}
	if c.headful {
		cfg.Browser.Headless = false
	}
	resolvePaths(cfg, c.root)
}
