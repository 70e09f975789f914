package models

// ChartResponse mirrors the Yahoo Finance v8 chart payload. Only the fields
// the pipelines read are declared; numeric cells are pointers because the
// endpoint emits null for missing buckets.
type ChartResponse struct {
	Chart struct {
		Result []*ChartResult `json:"result"`
		Error  *ChartError    `json:"error"`
	} `json:"chart"`
}

// ChartError is the error envelope some chart responses carry in place of a
// result list.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult is a single ticker entry in a chart response.
type ChartResult struct {
	Meta       *ChartMeta `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators struct {
		Quote    []QuoteIndicator    `json:"quote"`
		AdjClose []AdjCloseIndicator `json:"adjclose"`
	} `json:"indicators"`
}

// ChartMeta is the per-ticker metadata block. Every numeric field is
// independently optional.
type ChartMeta struct {
	Currency             string   `json:"currency"`
	Symbol               string   `json:"symbol"`
	ShortName            string   `json:"shortName"`
	LongName             string   `json:"longName"`
	ExchangeName         string   `json:"exchangeName"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	PreviousClose        *float64 `json:"previousClose"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  *float64 `json:"regularMarketVolume"`
	FiftyTwoWeekHigh     *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      *float64 `json:"fiftyTwoWeekLow"`
	FirstTradeDate       *int64   `json:"firstTradeDate"`
	RegularMarketTime    *int64   `json:"regularMarketTime"`
}

// QuoteIndicator holds the parallel OHLCV arrays of a chart result.
type QuoteIndicator struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

// AdjCloseIndicator holds the adjusted close series.
type AdjCloseIndicator struct {
	AdjClose []*float64 `json:"adjclose"`
}

// firstQuote returns the first quote indicator block, or nil.
func (r *ChartResult) firstQuote() *QuoteIndicator {
	if r == nil || len(r.Indicators.Quote) == 0 {
		return nil
	}
	return &r.Indicators.Quote[0]
}

// lastClose returns the most recent non-null close of the quote series,
// falling back to the adjusted close series.
func (r *ChartResult) lastClose() *float64 {
	if q := r.firstQuote(); q != nil {
		for i := len(q.Close) - 1; i >= 0; i-- {
			if q.Close[i] != nil {
				return q.Close[i]
			}
		}
	}
	if r != nil && len(r.Indicators.AdjClose) > 0 {
		adj := r.Indicators.AdjClose[0].AdjClose
		for i := len(adj) - 1; i >= 0; i-- {
			if adj[i] != nil {
				return adj[i]
			}
		}
	}
	return nil
}
