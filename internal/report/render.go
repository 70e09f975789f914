// Package report renders normalized quote records into fixed-layout text.
// Formatters are pure functions over records; they never fetch.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// money renders a dollar amount with grouped thousands, or "N/A" when absent.
func money(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("$%s", printer.Sprintf("%.2f", *v))
}

// number renders a plain two-decimal value with grouped thousands.
func number(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return printer.Sprintf("%.2f", *v)
}

// volume renders an integer count with grouped thousands.
func volume(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return humanize.Comma(int64(*v))
}

// percent renders a fraction as a two-decimal percentage.
func percent(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

// changeLine renders a signed change value with its signed percentage.
func changeLine(change, pct *float64) string {
	if change == nil || pct == nil {
		return notAvailable
	}
	return fmt.Sprintf("%+.2f (%+.2f%%)", *change, *pct*100)
}

// rangeLine renders a low-high dollar span.
func rangeLine(lo, hi *float64) string {
	if lo == nil || hi == nil {
		return notAvailable
	}
	return fmt.Sprintf("%s - %s", money(lo), money(hi))
}
