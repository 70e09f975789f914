package report

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"QuoteLens/internal/domain/models"
)

// maxTableRows bounds the rendered table; longer series are stride-sampled.
const maxTableRows = 10

// History renders a header, a stride-sampled OHLCV table, and a summary line
// computed from the endpoints of the full series.
func History(s *models.HistorySeries, period, interval string) (string, error) {
	if s == nil || len(s.Points) == 0 {
		return "", fmt.Errorf("history report: empty series")
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "Historical data for %s (%s, %s)", s.Symbol, period, interval)
	if s.Currency != "" {
		fmt.Fprintf(b, " in %s", s.Currency)
	}
	b.WriteString("\n")
	if s.FirstTradeDate != nil && s.LastTradeDate != nil {
		fmt.Fprintf(b, "Traded %s through %s\n",
			s.FirstTradeDate.Format("2006-01-02"),
			s.LastTradeDate.Format("2006-01-02"),
		)
	}
	b.WriteString("\n")

	layout := "2006-01-02"
	if isIntraday(interval) {
		layout = "2006-01-02 15:04"
	}

	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{"Date", "Open", "High", "Low", "Close", "Volume"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	n := len(s.Points)
	step := n / maxTableRows
	if step < 1 {
		step = 1
	}
	for i := 0; i < n; i += step {
		p := s.Points[i]
		table.Append([]string{
			p.Timestamp.Format(layout),
			number(p.Open),
			number(p.High),
			number(p.Low),
			number(p.Close),
			volume(p.Volume),
		})
	}
	table.Render()

	first, last := s.Points[0].Close, s.Points[n-1].Close
	fmt.Fprintf(b, "\nChange over period: %s", seriesChange(first, last))
	return b.String(), nil
}

func seriesChange(first, last *float64) string {
	if first == nil || last == nil || *first == 0 {
		return notAvailable
	}
	change := *last - *first
	pct := change / *first
	return fmt.Sprintf("%+.2f (%+.2f%%)", change, pct*100)
}

func isIntraday(interval string) bool {
	switch interval {
	case "1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h":
		return true
	}
	return false
}
