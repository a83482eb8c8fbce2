/*
Package monitoring provides Prometheus metrics for sync runs and the
dashboard server.

# Overview

All collectors live on a private registry so tests can create as many
Metrics as they like. The sync job is a short-lived process, so it writes
its registry to a node_exporter textfile at exit instead of serving it.
The dashboard server exposes the same registry on /metrics.

# Collectors

- Run outcome counter and duration histogram
- Per-step duration histogram (sign-in, each page, aggregation)
- Extracted record gauge per page and winning strategy
- Last successful run timestamp and total assets
- Failure capture outcomes
- Dashboard HTTP request counter and latency

# Usage

	metrics := monitoring.NewMetrics()
	timer := metrics.StartStep("portfolio")
	// ...
	timer.Stop()

	if err := metrics.WriteTextfile("/var/lib/node_exporter/mfsync.prom"); err != nil {
		logger.Warn("metrics export failed", zap.Error(err))
	}
*/
package monitoring
