package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

func portfolioStrategies(sel PortfolioSelectors) []Strategy[types.AssetRecord] {
	return []Strategy[types.AssetRecord]{
		{Name: ModeStructured, Extract: func(snap *Snapshot) []types.AssetRecord {
			return portfolioStructured(snap, sel)
		}},
		{Name: ModeTabular, Extract: portfolioTabular},
	}
}

func portfolioStructured(snap *Snapshot, sel PortfolioSelectors) []types.AssetRecord {
	var records []types.AssetRecord

	groups := firstMatch(snap.doc.Selection, sel.Group)
	if groups == nil {
		return records
	}

	groups.Each(func(_ int, group *goquery.Selection) {
		category, _ := firstText(group, sel.Category)
		if category == "" {
			category = types.UnknownCategory
		}

		items := firstMatch(group, sel.Item)
		if items == nil {
			return
		}

		items.Each(func(_ int, item *goquery.Selection) {
			name, okName := firstText(item, sel.Name)
			value, okValue := firstText(item, sel.Value)
			if !okName || !okValue {
				return
			}
			records = append(records, types.AssetRecord{
				Category: category,
				Name:     name,
				Value:    ParseAmount(value),
			})
		})
	})

	return records
}

func portfolioTabular(snap *Snapshot) []types.AssetRecord {
	var records []types.AssetRecord
	labelValueRows(snap, func(name string, value int64) {
		records = append(records, types.AssetRecord{
			Category: types.TabularCategory,
			Name:     name,
			Value:    value,
		})
	})
	return records
}
