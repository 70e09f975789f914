package models

import "time"

// HistoryPoint is one OHLCV bucket. Numeric fields are independently
// optional; null cells stay nil and render "N/A".
type HistoryPoint struct {
	Timestamp time.Time
	Open      *float64
	High      *float64
	Low       *float64
	Close     *float64
	Volume    *float64
}

// HistorySeries is a chronological OHLCV series for one ticker.
type HistorySeries struct {
	Symbol         string
	Currency       string
	FirstTradeDate *time.Time
	LastTradeDate  *time.Time
	Points         []HistoryPoint
}

// NewHistorySeries extracts a HistorySeries from a chart result, pairing the
// timestamp array with the parallel indicator arrays. Index gaps in the
// indicator arrays leave the corresponding fields nil. Returns nil when the
// result carries no timestamps.
func NewHistorySeries(symbol string, res *ChartResult) *HistorySeries {
	if res == nil || len(res.Timestamp) == 0 {
		return nil
	}

	s := &HistorySeries{Symbol: symbol}
	if meta := res.Meta; meta != nil {
		s.Currency = meta.Currency
		if meta.Symbol != "" {
			s.Symbol = meta.Symbol
		}
		if meta.FirstTradeDate != nil {
			t := time.Unix(*meta.FirstTradeDate, 0)
			s.FirstTradeDate = &t
		}
		if meta.RegularMarketTime != nil {
			t := time.Unix(*meta.RegularMarketTime, 0)
			s.LastTradeDate = &t
		}
	}

	quote := res.firstQuote()
	s.Points = make([]HistoryPoint, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		p := HistoryPoint{Timestamp: time.Unix(ts, 0)}
		if quote != nil {
			p.Open = cell(quote.Open, i)
			p.High = cell(quote.High, i)
			p.Low = cell(quote.Low, i)
			p.Close = cell(quote.Close, i)
			p.Volume = cell(quote.Volume, i)
		}
		s.Points = append(s.Points, p)
	}
	return s
}

func cell(arr []*float64, i int) *float64 {
	if i < 0 || i >= len(arr) {
		return nil
	}
	return arr[i]
}
