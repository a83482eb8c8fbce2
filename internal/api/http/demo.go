package http

import (
	"time"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

// DemoDocument returns the sample dataset shown before the first sync.
func DemoDocument(now time.Time) types.Document {
	return types.Document{
		UpdatedAt: now,
		Summary: types.Summary{
			TotalAssets: 5383100,
			Income:      304461,
			Expense:     222125,
			Balance:     82336,
		},
		AssetComposition: []types.Category{
			{Category: "預金・現金・暗号資産", Total: 2314926, Items: []types.Item{
				{Name: "三菱UFJ銀行", Value: 1500000},
				{Name: "楽天銀行", Value: 814926},
			}},
			{Category: "投資信託", Total: 1999859, Items: []types.Item{
				{Name: "eMAXIS Slim 米国株式(S&P500)", Value: 850000},
				{Name: "eMAXIS Slim 全世界株式", Value: 650000},
				{Name: "楽天・全米株式", Value: 499859},
			}},
			{Category: "株式(現物)", Total: 703040, Items: []types.Item{
				{Name: "トヨタ自動車", Value: 350000},
				{Name: "ソニーグループ", Value: 200000},
				{Name: "任天堂", Value: 153040},
			}},
			{Category: "年金", Total: 350038, Items: []types.Item{
				{Name: "iDeCo", Value: 350038},
			}},
			{Category: "ポイント・マイル", Total: 15237, Items: []types.Item{
				{Name: "楽天ポイント", Value: 10000},
				{Name: "Vポイント", Value: 5237},
			}},
		},
		AssetHistory: []types.HistoryEntry{
			{Date: "2025/08", Value: 4643327},
			{Date: "2025/09", Value: 4750000},
			{Date: "2025/10", Value: 4900000},
			{Date: "2025/11", Value: 5100000},
			{Date: "2025/12", Value: 5200000},
			{Date: "2026/01", Value: 5300000},
			{Date: "2026/02", Value: 5383100},
		},
		RecentTransactions: []types.TransactionEntry{
			{Date: "2/28", Content: "住民税", Category: "税金", Amount: -15000},
			{Date: "2/27", Content: "家賃", Category: "住宅", Amount: -75000},
			{Date: "2/27", Content: "JR東日本", Category: "交通費", Amount: -433},
			{Date: "2/25", Content: "給与", Category: "給与", Amount: 280000},
			{Date: "2/24", Content: "スーパー", Category: "食費", Amount: -3500},
		},
	}
}
