package scraper

import (
	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

// Extractor runs the per-page strategy lists against snapshots.
type Extractor struct {
	selectors    Selectors
	portfolio    []Strategy[types.AssetRecord]
	history      []Strategy[types.HistoryPoint]
	transactions []Strategy[types.Transaction]
}

// NewExtractor builds the strategy lists for a selector set.
func NewExtractor(sel Selectors) *Extractor {
	return &Extractor{
		selectors:    sel,
		portfolio:    portfolioStrategies(sel.Portfolio),
		history:      historyStrategies(sel.History),
		transactions: transactionStrategies(sel.Cashflow),
	}
}

// Portfolio extracts holdings from the portfolio page.
func (e *Extractor) Portfolio(snap *Snapshot) Result[types.AssetRecord] {
	return Run(snap, e.portfolio...)
}

// History extracts up to MaxHistoryPoints dated totals.
func (e *Extractor) History(snap *Snapshot) Result[types.HistoryPoint] {
	res := Run(snap, e.history...)
	res.Records = limit(res.Records, types.MaxHistoryPoints)
	return res
}

// Cashflow extracts the period summary and up to MaxTransactions rows.
// The two are read independently.
func (e *Extractor) Cashflow(snap *Snapshot) (types.CashflowSummary, Result[types.Transaction]) {
	res := Run(snap, e.transactions...)
	res.Records = limit(res.Records, types.MaxTransactions)
	return cashflowSummary(snap, e.selectors.Cashflow), res
}
