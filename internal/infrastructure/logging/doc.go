// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON lines for log shippers and cron mail
//   - Development: Colored console output for interactive runs
//
// Every sync run derives a child logger carrying its run_id so all lines of
// one run can be grepped together. Credentials must never be passed as
// fields; use Redact when an identifier has to appear in a message.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	runLog := logger.WithRun("run_01HZX...")
//	runLog.Info("Navigating", zap.String("url", url))
//	runLog.Error("Sync failed", zap.Error(err))
package logging
