// Package scraper extracts asset and cashflow records from page snapshots.
//
// This package is organized into specialized modules:
//   - snapshot: HTML loading with charset detection and sanitization
//   - parse: tolerant amount parsing
//   - strategy: ordered strategy runner (first non-empty result wins)
//   - selectors: selector candidates with YAML overrides
//   - portfolio, history, cashflow: per-page strategies
//   - table: tabular fallback shared by every page
//
// Built on specialized libraries:
//   - goquery: CSS selectors for structured mode
//   - htmlquery: XPath for the tabular fallback
//   - bluemonday: HTML sanitization for diagnostic dumps
//   - chardet: character encoding detection
//   - go-yaml: selector override files
//
// Markup on the target site drifts without notice. Extraction never fails on
// missing data: an empty result is a valid outcome, and malformed amounts
// parse as zero.
//
// Example Usage:
//
//	snap, err := scraper.LoadSnapshot(html)
//	ex := scraper.NewExtractor(scraper.DefaultSelectors())
//	res := ex.Portfolio(snap)
//	fmt.Println(res.Strategy, len(res.Records))
package scraper
