package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

func TestHistoryStructured(t *testing.T) {
	html := `<ul>
<li class="history-item"><span class="date">2026/02</span><span class="amount">5,383,100円</span></li>
<li class="history-item"><span class="date">2026/01</span><span class="amount">-</span></li>
<li class="history-item"><span class="date"></span><span class="amount">100</span></li>
<li class="history-item"><span class="date">2025/12</span><span class="amount">5,200,000円</span></li>
</ul>`
	snap, err := LoadSnapshot(html)
	require.NoError(t, err)

	res := NewExtractor(DefaultSelectors()).History(snap)

	assert.Equal(t, ModeStructured, res.Strategy)
	assert.Equal(t, []types.HistoryPoint{
		{Date: "2026/02", Value: 5383100},
		{Date: "2025/12", Value: 5200000},
	}, res.Records)
}

func TestHistoryTabularCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("<table>")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "<tr><td>day %02d</td><td>%d円</td></tr>", i, i*1000)
	}
	b.WriteString("</table>")

	snap, err := LoadSnapshot(b.String())
	require.NoError(t, err)

	res := NewExtractor(DefaultSelectors()).History(snap)

	assert.Equal(t, ModeTabular, res.Strategy)
	require.Len(t, res.Records, types.MaxHistoryPoints)
	assert.Equal(t, types.HistoryPoint{Date: "day 01", Value: 1000}, res.Records[0])
	assert.Equal(t, "day 30", res.Records[29].Date)
}
