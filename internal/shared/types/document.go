package types

import "time"

// Output limits for the list sections of a Document.
const (
	MaxHistoryPoints = 30
	MaxTransactions  = 20
)

// Document is the canonical dataset written for the dashboard.
type Document struct {
	UpdatedAt          time.Time          `json:"updatedAt"`
	Summary            Summary            `json:"summary"`
	AssetComposition   []Category         `json:"assetComposition"`
	AssetHistory       []HistoryEntry     `json:"assetHistory"`
	RecentTransactions []TransactionEntry `json:"recentTransactions"`
}

// Summary holds the headline totals.
type Summary struct {
	TotalAssets int64 `json:"totalAssets"`
	Income      int64 `json:"income"`
	Expense     int64 `json:"expense"`
	Balance     int64 `json:"balance"`
}

// Category groups the items of one asset class.
type Category struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Items    []Item `json:"items"`
}

// Item is a single named holding.
type Item struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// HistoryEntry is one point of the asset history series.
type HistoryEntry struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// TransactionEntry is one row of the recent transactions table.
type TransactionEntry struct {
	Date     string `json:"date"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}
