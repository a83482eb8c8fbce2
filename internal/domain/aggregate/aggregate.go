package aggregate

import (
	"time"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

// Build assembles the canonical document from raw records.
func Build(
	assets []types.AssetRecord,
	history []types.HistoryPoint,
	cashflow types.CashflowSummary,
	transactions []types.Transaction,
	now time.Time,
) types.Document {
	composition, total := groupAssets(assets)

	return types.Document{
		UpdatedAt: now,
		Summary: types.Summary{
			TotalAssets: total,
			Income:      cashflow.Income,
			Expense:     cashflow.Expense,
			Balance:     cashflow.Income - cashflow.Expense,
		},
		AssetComposition:   composition,
		AssetHistory:       convertHistory(history),
		RecentTransactions: convertTransactions(transactions),
	}
}

// groupAssets buckets records by category and returns the grand total.
func groupAssets(assets []types.AssetRecord) ([]types.Category, int64) {
	composition := make([]types.Category, 0)
	index := make(map[string]int)
	var total int64

	for _, a := range assets {
		i, ok := index[a.Category]
		if !ok {
			i = len(composition)
			index[a.Category] = i
			composition = append(composition, types.Category{
				Category: a.Category,
				Items:    make([]types.Item, 0),
			})
		}

		composition[i].Items = append(composition[i].Items, types.Item{Name: a.Name, Value: a.Value})
		composition[i].Total += a.Value
		total += a.Value
	}

	return composition, total
}

func convertHistory(history []types.HistoryPoint) []types.HistoryEntry {
	history = truncate(history, types.MaxHistoryPoints)
	out := make([]types.HistoryEntry, 0, len(history))
	for _, h := range history {
		out = append(out, types.HistoryEntry{Date: h.Date, Value: h.Value})
	}
	return out
}

func convertTransactions(transactions []types.Transaction) []types.TransactionEntry {
	transactions = truncate(transactions, types.MaxTransactions)
	out := make([]types.TransactionEntry, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, types.TransactionEntry{
			Date:     t.Date,
			Content:  t.Content,
			Category: t.Category,
			Amount:   t.Amount,
		})
	}
	return out
}

// truncate keeps the first n elements.
func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
