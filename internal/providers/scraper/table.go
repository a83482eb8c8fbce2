package scraper

import (
	"github.com/antchfx/htmlquery"
)

const (
	rowXPath  = "//table//tr"
	cellXPath = ".//td"
)

// tableRows returns the trimmed cell texts of every table row that has at
// least two data cells, in document order.
func tableRows(snap *Snapshot) [][]string {
	var rows [][]string
	for _, tr := range htmlquery.Find(snap.root, rowXPath) {
		tds := htmlquery.Find(tr, cellXPath)
		if len(tds) < 2 {
			continue
		}

		cells := make([]string, len(tds))
		for i, td := range tds {
			cells[i] = textOf(td)
		}
		rows = append(rows, cells)
	}
	return rows
}

// labelValueRows applies the common tabular rule: first cell is the label,
// last cell the amount. Rows with an empty label or zero amount are dropped.
func labelValueRows(snap *Snapshot, fn func(label string, value int64)) {
	for _, cells := range tableRows(snap) {
		label := cells[0]
		value := ParseAmount(cells[len(cells)-1])
		if label == "" || value == 0 {
			continue
		}
		fn(label, value)
	}
}
