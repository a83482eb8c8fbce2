package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/domain/session"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/capture"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/config"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
	"github.com/GriffinCanCode/mfdash/internal/providers/scraper"
	"github.com/GriffinCanCode/mfdash/internal/shared/id"
	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

// Report describes a completed run.
type Report struct {
	RunID      id.RunID
	OutputPath string
	Document   types.Document
	Duration   time.Duration
}

// Runner executes sync runs.
type Runner struct {
	cfg       *config.Config
	launcher  browser.Launcher
	extractor *scraper.Extractor
	metrics   *monitoring.Metrics
	logger    *logging.Logger
	sleep     session.SleepFunc
	now       func() time.Time
}

// NewRunner creates a runner. A nil extractor uses the default selectors.
func NewRunner(cfg *config.Config, launcher browser.Launcher, extractor *scraper.Extractor, metrics *monitoring.Metrics, logger *logging.Logger) *Runner {
	if extractor == nil {
		extractor = scraper.NewExtractor(scraper.DefaultSelectors())
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:       cfg,
		launcher:  launcher,
		extractor: extractor,
		metrics:   metrics,
		logger:    logger,
		sleep:     session.Sleep,
		now:       time.Now,
	}
}

// WithSleep replaces the delay function for sign-in and page settling.
func (r *Runner) WithSleep(fn session.SleepFunc) *Runner {
	r.sleep = fn
	return r
}

// WithClock replaces the timestamp source for the document.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Run performs one sync and writes the document to the configured path.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := id.NewRunID()
	log := r.logger.WithRun(runID.String())
	start := time.Now()

	log.Info("Starting sync")
	report, err := r.run(ctx, log)
	elapsed := time.Since(start)

	r.metrics.RecordRun(err == nil, elapsed)
	if err == nil {
		r.metrics.TotalAssets.Set(float64(report.Document.Summary.TotalAssets))
	}
	r.exportMetrics(log)

	if err != nil {
		return nil, err
	}
	report.RunID = runID
	report.Duration = elapsed
	return report, nil
}

func (r *Runner) run(ctx context.Context, log *logging.Logger) (*Report, error) {
	if err := r.cfg.Credentials.Validate(); err != nil {
		log.Error("Configuration error", zap.Error(err))
		return nil, err
	}

	page, err := r.launcher.Launch(ctx)
	if err != nil {
		log.Error("Failed to launch browser", zap.Error(err))
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			log.Warn("Failed to close browser", zap.Error(err))
		}
	}()

	auth := session.NewManager(r.cfg.Credentials, session.OptionsFromConfig(r.cfg), log.Component("session")).
		WithSleep(r.sleep)
	out := r.cfg.Output.DataPath
	seq := NewSequencer(SequencerConfig{
		Page:      page,
		Auth:      auth,
		Extractor: r.extractor,
		Pages: Pages{
			Portfolio: r.cfg.Site.URL(r.cfg.Site.PortfolioPath),
			History:   r.cfg.Site.URL(r.cfg.Site.HistoryPath),
			Cashflow:  r.cfg.Site.URL(r.cfg.Site.CashflowPath),
		},
		Output:  out,
		Settle:  r.cfg.Pipeline.PageSettle,
		Sleep:   r.sleep,
		Now:     r.now,
		Metrics: r.metrics,
		Logger:  log.Component("sequencer"),
	})

	var doc types.Document

	capturer := capture.New(r.cfg.Output.ScreenshotPath, r.cfg.Output.SnapshotPath, r.metrics, log.Component("capture"))
	err = capturer.Guard(ctx, page, func() error {
		var err error
		doc, err = seq.Run(ctx)
		return err
	})
	if err != nil {
		log.Error("Sync failed",
			zap.Stringer("state", seq.State()),
			zap.String("screenshot", r.cfg.Output.ScreenshotPath),
			zap.Error(err))
		return nil, err
	}

	log.Info("Sync complete",
		zap.String("output", out),
		zap.String("total_assets", money.New(doc.Summary.TotalAssets, money.JPY).Display()),
		zap.Int("categories", len(doc.AssetComposition)),
		zap.Int("transactions", len(doc.RecentTransactions)))

	return &Report{OutputPath: out, Document: doc}, nil
}

func (r *Runner) exportMetrics(log *logging.Logger) {
	path := r.cfg.Output.MetricsTextfile
	if path == "" {
		return
	}
	if err := r.metrics.WriteTextfile(path); err != nil {
		log.Warn("Failed to write metrics textfile", zap.String("path", path), zap.Error(err))
	}
}
