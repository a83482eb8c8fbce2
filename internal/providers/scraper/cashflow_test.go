package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

func TestCashflowStructured(t *testing.T) {
	html := `<html><body>
<div class="summary"><span class="plus">+304,461円</span><span class="minus">-222,125円</span></div>
<div class="transaction-item"><span class="date">2/28</span><span class="content">住民税</span><span class="category">税金</span><span class="amount">-15,000</span></div>
<div class="transaction-item"><span class="date">2/27</span><span class="memo">JR東日本</span><span class="amount">-433</span></div>
<div class="transaction-item"><span class="date">2/26</span><span class="amount">-1</span></div>
<div class="transaction-item"><span class="date">2/25</span><span class="content">振替</span><span class="amount">0</span></div>
</body></html>`
	snap, err := LoadSnapshot(html)
	require.NoError(t, err)

	summary, res := NewExtractor(DefaultSelectors()).Cashflow(snap)

	assert.Equal(t, types.CashflowSummary{Income: 304461, Expense: 222125}, summary)
	assert.Equal(t, ModeStructured, res.Strategy)
	assert.Equal(t, []types.Transaction{
		{Date: "2/28", Content: "住民税", Category: "税金", Amount: -15000},
		{Date: "2/27", Content: "JR東日本", Amount: -433},
		{Date: "2/25", Content: "振替", Amount: 0},
	}, res.Records)
}

func TestCashflowTabular(t *testing.T) {
	html := `<table>
<tr><td>2/28</td><td>住民税</td><td>税金</td><td>-15,000</td></tr>
<tr><td>2/27</td><td></td><td>住宅</td><td>-75,000</td></tr>
<tr><td>2/25</td><td>給与</td><td>給与</td><td>280,000</td></tr>
</table>`
	snap, err := LoadSnapshot(html)
	require.NoError(t, err)

	summary, res := NewExtractor(DefaultSelectors()).Cashflow(snap)

	assert.Equal(t, types.CashflowSummary{}, summary)
	assert.Equal(t, ModeTabular, res.Strategy)
	assert.Equal(t, []types.Transaction{
		{Date: "2/28", Content: "住民税", Category: "税金", Amount: -15000},
		{Date: "2/25", Content: "給与", Category: "給与", Amount: 280000},
	}, res.Records)
}

func TestCashflowSummaryWithoutTransactions(t *testing.T) {
	snap, err := LoadSnapshot(`<div class="income-total">収入 50,000</div>`)
	require.NoError(t, err)

	summary, res := NewExtractor(DefaultSelectors()).Cashflow(snap)

	assert.Equal(t, int64(50000), summary.Income)
	assert.Equal(t, int64(0), summary.Expense)
	assert.Empty(t, res.Records)
}
