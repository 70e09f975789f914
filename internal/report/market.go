package report

import (
	"fmt"
	"strings"

	"QuoteLens/internal/domain/models"
)

// Indices renders one block per index record, joined by a blank line, in the
// order given. Nil entries were already skipped by the batch and are not
// expected here.
func Indices(records []*models.IndexRecord) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("market report: no records")
	}

	blocks := make([]string, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		b := &strings.Builder{}
		fmt.Fprintf(b, "%s (%s)\n", r.DisplayName, r.Symbol)
		fmt.Fprintf(b, "Price: %s\n", money(r.Price))
		fmt.Fprintf(b, "Change: %s\n", changeLine(r.Change(), r.ChangePercent()))
		fmt.Fprintf(b, "Previous Close: %s\n", money(r.PreviousClose))
		fmt.Fprintf(b, "Day Range: %s", rangeLine(r.DayLow, r.DayHigh))
		blocks = append(blocks, b.String())
	}
	if len(blocks) == 0 {
		return "", fmt.Errorf("market report: no records")
	}
	return strings.Join(blocks, "\n\n"), nil
}
