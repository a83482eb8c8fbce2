// Package types provides the shared data structures for the sync pipeline.
//
// Raw records are what the extraction strategies pull out of a page
// snapshot. The Document is the canonical shape persisted for the dashboard;
// its JSON field names are a contract with the frontend and must not change.
//
// Raw Types:
//   - AssetRecord: one holding under a portfolio category
//   - HistoryPoint: one dated total-assets observation
//   - Transaction: one cashflow line item (signed amount)
//   - CashflowSummary: period income and expense (both non-negative)
//
// Canonical Types:
//   - Document, Summary, Category, Item, HistoryEntry, TransactionEntry
//
// Example Usage:
//
//	doc := aggregate.Build(assets, history, summary, txs, time.Now())
//	fmt.Println(doc.Summary.TotalAssets)
package types
