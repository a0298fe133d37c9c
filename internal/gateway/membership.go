package gateway

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"StockScope/internal/model"
)

// FetchIndexMembership scrapes the configured membership page for the list
// of member tickers. The page is expected to contain at least one HTML table
// whose header row includes a "Symbol" column; the first such table wins.
func (g *Gateway) FetchIndexMembership() ([]string, error) {
	const key = "membership"
	if v, ok := g.cache.get(key); ok {
		return v.([]string), nil
	}

	body, err := g.getBody(g.MembershipURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: g.MembershipURL, Err: err}
	}

	tickers, err := extractSymbolColumn(doc)
	if err != nil {
		return nil, err
	}

	g.cache.put(key, tickers, g.MembershipTTL)
	return tickers, nil
}

func extractSymbolColumn(doc *goquery.Document) ([]string, error) {
	var tickers []string
	found := false

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		symbolCol := -1
		table.Find("tr").First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
			if strings.EqualFold(strings.TrimSpace(cell.Text()), "Symbol") {
				symbolCol = i
			}
		})
		if symbolCol < 0 {
			return true // keep scanning tables
		}

		seen := make(map[string]bool)
		table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
			if rowIdx == 0 {
				return // header
			}
			cell := row.Find("th, td").Eq(symbolCol)
			sym := model.NormalizeTicker(cell.Text())
			if sym == "" || seen[sym] {
				return
			}
			seen[sym] = true
			tickers = append(tickers, sym)
		})
		found = true
		return false
	})

	if !found {
		return nil, &SchemaError{Detail: "no table with a Symbol column"}
	}
	return tickers, nil
}
