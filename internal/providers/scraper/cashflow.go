package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

// cashflowSummary reads the period totals. Missing elements leave zero.
func cashflowSummary(snap *Snapshot, sel CashflowSelectors) types.CashflowSummary {
	var summary types.CashflowSummary
	if text, ok := firstText(snap.doc.Selection, sel.Income); ok {
		summary.Income = ParseUnsigned(text)
	}
	if text, ok := firstText(snap.doc.Selection, sel.Expense); ok {
		summary.Expense = ParseUnsigned(text)
	}
	return summary
}

func transactionStrategies(sel CashflowSelectors) []Strategy[types.Transaction] {
	return []Strategy[types.Transaction]{
		{Name: ModeStructured, Extract: func(snap *Snapshot) []types.Transaction {
			return transactionsStructured(snap, sel)
		}},
		{Name: ModeTabular, Extract: transactionsTabular},
	}
}

func transactionsStructured(snap *Snapshot, sel CashflowSelectors) []types.Transaction {
	var txs []types.Transaction

	rows := firstMatch(snap.doc.Selection, sel.Row)
	if rows == nil {
		return txs
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		date, okDate := firstText(row, sel.Date)
		content, okContent := firstText(row, sel.Content)
		amount, okAmount := firstText(row, sel.Amount)
		if !okDate || !okContent || !okAmount {
			return
		}
		if date == "" || content == "" {
			return
		}
		category, _ := firstText(row, sel.Category)

		txs = append(txs, types.Transaction{
			Date:     date,
			Content:  content,
			Category: category,
			Amount:   ParseAmount(amount),
		})
	})

	return txs
}

// transactionsTabular reads date, content and optional category from the
// first three cells and the signed amount from the last. Zero amounts are
// kept; rows need a date and content.
func transactionsTabular(snap *Snapshot) []types.Transaction {
	var txs []types.Transaction
	for _, cells := range tableRows(snap) {
		date, content := cells[0], cells[1]
		if date == "" || content == "" {
			continue
		}

		var category string
		if len(cells) >= 3 {
			category = cells[2]
		}

		txs = append(txs, types.Transaction{
			Date:     date,
			Content:  content,
			Category: category,
			Amount:   ParseAmount(cells[len(cells)-1]),
		})
	}
	return txs
}
