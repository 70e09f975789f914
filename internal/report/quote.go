package report

import (
	"fmt"
	"strings"

	"QuoteLens/internal/domain/models"
)

// Quote renders a quote snapshot, one field per line. A degraded snapshot
// gets the short layout plus a note; every absent numeric renders "N/A".
func Quote(q *models.QuoteRecord) (string, error) {
	if q == nil {
		return "", fmt.Errorf("quote report: nil record")
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "Symbol: %s\n", q.Symbol)
	fmt.Fprintf(b, "Name: %s\n", q.DisplayName)
	fmt.Fprintf(b, "Price: %s\n", money(q.Price))
	fmt.Fprintf(b, "Change: %s\n", changeLine(q.Change(), q.ChangePercent()))
	fmt.Fprintf(b, "Previous Close: %s\n", money(q.PreviousClose))

	if q.Degraded {
		b.WriteString("\nNote: full quote data is unavailable; price reflects the most recent close.\n")
		return b.String(), nil
	}

	fmt.Fprintf(b, "Open: %s\n", money(q.Open))
	fmt.Fprintf(b, "Day Range: %s\n", rangeLine(q.DayLow, q.DayHigh))
	fmt.Fprintf(b, "52-Week Range: %s\n", rangeLine(q.FiftyTwoWeekLow, q.FiftyTwoWeekHigh))
	fmt.Fprintf(b, "Volume: %s\n", volume(q.Volume))
	fmt.Fprintf(b, "Avg. Volume: %s\n", volume(q.AverageVolume))
	fmt.Fprintf(b, "Market Cap: %s\n", money(q.MarketCap))
	fmt.Fprintf(b, "P/E Ratio: %s\n", number(q.TrailingPE))
	fmt.Fprintf(b, "EPS: %s\n", number(q.EPS))
	fmt.Fprintf(b, "Dividend Yield: %s\n", percent(q.DividendYield))

	return b.String(), nil
}
