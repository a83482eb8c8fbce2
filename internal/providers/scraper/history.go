package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

func historyStrategies(sel HistorySelectors) []Strategy[types.HistoryPoint] {
	return []Strategy[types.HistoryPoint]{
		{Name: ModeStructured, Extract: func(snap *Snapshot) []types.HistoryPoint {
			return historyStructured(snap, sel)
		}},
		{Name: ModeTabular, Extract: historyTabular},
	}
}

func historyStructured(snap *Snapshot, sel HistorySelectors) []types.HistoryPoint {
	var points []types.HistoryPoint

	rows := firstMatch(snap.doc.Selection, sel.Row)
	if rows == nil {
		return points
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		date, okDate := firstText(row, sel.Date)
		text, okValue := firstText(row, sel.Value)
		if !okDate || !okValue {
			return
		}
		value := ParseAmount(text)
		if date == "" || value == 0 {
			return
		}
		points = append(points, types.HistoryPoint{Date: date, Value: value})
	})

	return points
}

func historyTabular(snap *Snapshot) []types.HistoryPoint {
	var points []types.HistoryPoint
	labelValueRows(snap, func(date string, value int64) {
		points = append(points, types.HistoryPoint{Date: date, Value: value})
	})
	return points
}
