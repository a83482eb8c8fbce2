package scraper

import (
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-yaml"
)

// Selectors holds prioritized CSS selector candidates for every page.
// Within a list, the first candidate that matches at least one element wins.
type Selectors struct {
	Portfolio PortfolioSelectors `yaml:"portfolio"`
	History   HistorySelectors   `yaml:"history"`
	Cashflow  CashflowSelectors  `yaml:"cashflow"`
}

// PortfolioSelectors locate asset groups and their holdings.
type PortfolioSelectors struct {
	Group    []string `yaml:"group"`
	Category []string `yaml:"category"`
	Item     []string `yaml:"item"`
	Name     []string `yaml:"name"`
	Value    []string `yaml:"value"`
}

// HistorySelectors locate dated asset totals.
type HistorySelectors struct {
	Row   []string `yaml:"row"`
	Date  []string `yaml:"date"`
	Value []string `yaml:"value"`
}

// CashflowSelectors locate the period summary and transaction rows.
type CashflowSelectors struct {
	Income   []string `yaml:"income"`
	Expense  []string `yaml:"expense"`
	Row      []string `yaml:"row"`
	Date     []string `yaml:"date"`
	Content  []string `yaml:"content"`
	Category []string `yaml:"category"`
	Amount   []string `yaml:"amount"`
}

// DefaultSelectors returns the selector set matching the current site markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Portfolio: PortfolioSelectors{
			Group:    []string{".bs-group", ".portfolio-group", `[class*="asset-group"]`},
			Category: []string{".heading-category", "h3", ".group-name"},
			Item:     []string{".account", ".portfolio-item", `[class*="account-item"]`},
			Name:     []string{".account-name", ".name", "a"},
			Value:    []string{".amount", ".value", `[class*="amount"]`},
		},
		History: HistorySelectors{
			Row:   []string{".history-item"},
			Date:  []string{".date"},
			Value: []string{".amount"},
		},
		Cashflow: CashflowSelectors{
			Income:   []string{".plus", ".income", `[class*="income"]`},
			Expense:  []string{".minus", ".expense", `[class*="expense"]`},
			Row:      []string{".transaction-item"},
			Date:     []string{".date"},
			Content:  []string{".content", ".memo"},
			Category: []string{".category"},
			Amount:   []string{".amount"},
		},
	}
}

// LoadSelectors reads a YAML override file. Lists present in the file
// replace the defaults; absent lists keep them. An empty path returns the
// defaults.
func LoadSelectors(path string) (Selectors, error) {
	sel := DefaultSelectors()
	if path == "" {
		return sel, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return sel, fmt.Errorf("read selectors: %w", err)
	}

	var override Selectors
	if err := yaml.Unmarshal(data, &override); err != nil {
		return sel, fmt.Errorf("parse selectors %s: %w", path, err)
	}

	sel.merge(override)
	return sel, nil
}

func (s *Selectors) merge(o Selectors) {
	overlay(&s.Portfolio.Group, o.Portfolio.Group)
	overlay(&s.Portfolio.Category, o.Portfolio.Category)
	overlay(&s.Portfolio.Item, o.Portfolio.Item)
	overlay(&s.Portfolio.Name, o.Portfolio.Name)
	overlay(&s.Portfolio.Value, o.Portfolio.Value)

	overlay(&s.History.Row, o.History.Row)
	overlay(&s.History.Date, o.History.Date)
	overlay(&s.History.Value, o.History.Value)

	overlay(&s.Cashflow.Income, o.Cashflow.Income)
	overlay(&s.Cashflow.Expense, o.Cashflow.Expense)
	overlay(&s.Cashflow.Row, o.Cashflow.Row)
	overlay(&s.Cashflow.Date, o.Cashflow.Date)
	overlay(&s.Cashflow.Content, o.Cashflow.Content)
	overlay(&s.Cashflow.Category, o.Cashflow.Category)
	overlay(&s.Cashflow.Amount, o.Cashflow.Amount)
}

func overlay(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

// firstMatch returns the matches of the first candidate that finds
// anything below s, or nil.
func firstMatch(s *goquery.Selection, candidates []string) *goquery.Selection {
	for _, c := range candidates {
		if m := s.Find(c); m.Length() > 0 {
			return m
		}
	}
	return nil
}

// firstText returns the trimmed text of the first element matched by the
// candidates, and whether any candidate matched.
func firstText(s *goquery.Selection, candidates []string) (string, bool) {
	m := firstMatch(s, candidates)
	if m == nil {
		return "", false
	}
	return textOf(m.Get(0)), true
}
