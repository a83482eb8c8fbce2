package types

// Category labels used when a page does not expose one.
const (
	UnknownCategory = "不明"
	TabularCategory = "資産"
)

// AssetRecord is one holding extracted from the portfolio page.
type AssetRecord struct {
	Category string
	Name     string
	Value    int64
}

// HistoryPoint is one dated total-assets observation.
type HistoryPoint struct {
	Date  string
	Value int64
}

// Transaction is one cashflow line item. Category may be empty.
type Transaction struct {
	Date     string
	Content  string
	Category string
	Amount   int64
}

// CashflowSummary holds the period totals shown on the cashflow page.
// It is not reconciled against the transaction list.
type CashflowSummary struct {
	Income  int64
	Expense int64
}
