// Package capture saves diagnostics when a sync run fails.
package capture

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
	"github.com/GriffinCanCode/mfdash/internal/providers/scraper"
	"github.com/GriffinCanCode/mfdash/internal/shared/paths"
)

const captureTimeout = 15 * time.Second

// Capturer writes a screenshot and, optionally, a sanitized DOM dump.
type Capturer struct {
	screenshotPath string
	snapshotPath   string
	sanitizer      *scraper.Sanitizer
	metrics        *monitoring.Metrics
	logger         *logging.Logger
}

// New creates a capturer. An empty snapshotPath disables the DOM dump.
func New(screenshotPath, snapshotPath string, metrics *monitoring.Metrics, logger *logging.Logger) *Capturer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Capturer{
		screenshotPath: screenshotPath,
		snapshotPath:   snapshotPath,
		sanitizer:      scraper.NewSanitizer(),
		metrics:        metrics,
		logger:         logger,
	}
}

// Guard runs fn. If fn fails, diagnostics are captured from page and fn's
// error is returned as is.
func (c *Capturer) Guard(ctx context.Context, page browser.Page, fn func() error) error {
	err := fn()
	if err != nil {
		c.Capture(ctx, page)
	}
	return err
}

// Capture saves diagnostics from page. Failures are logged, never returned.
// It runs even when ctx is already cancelled.
func (c *Capturer) Capture(ctx context.Context, page browser.Page) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), captureTimeout)
	defer cancel()

	err := page.Screenshot(ctx, c.screenshotPath)
	c.record("screenshot", err)
	if err != nil {
		c.logger.Warn("Failed to save error screenshot", zap.Error(err))
	} else {
		c.logger.Info("Saved error screenshot", zap.String("path", c.screenshotPath))
	}

	if c.snapshotPath == "" {
		return
	}
	err = c.dumpDOM(ctx, page)
	c.record("snapshot", err)
	if err != nil {
		c.logger.Warn("Failed to save DOM snapshot", zap.Error(err))
		return
	}
	c.logger.Info("Saved DOM snapshot", zap.String("path", c.snapshotPath))
}

func (c *Capturer) dumpDOM(ctx context.Context, page browser.Page) error {
	html, err := page.Content(ctx)
	if err != nil {
		return err
	}
	if err := paths.EnsureParent(c.snapshotPath); err != nil {
		return err
	}
	if err := os.WriteFile(c.snapshotPath, []byte(c.sanitizer.Sanitize(html)), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (c *Capturer) record(kind string, err error) {
	if c.metrics != nil {
		c.metrics.RecordCapture(kind, err)
	}
}
