package models

// StockQuoteRequest is the argument payload of the yahoo_stock_quote tool.
type StockQuoteRequest struct {
	Symbol string `json:"symbol" validate:"required"`
}

// MarketDataRequest is the argument payload of the yahoo_market_data tool.
// An empty index list falls back to the three major US indices.
type MarketDataRequest struct {
	Indices []string `json:"indices"`
}

// StockHistoryRequest is the argument payload of the yahoo_stock_history
// tool. Period and interval defaults are applied at bind time; the values
// are validated against the period/interval enumerations in the pipeline so
// the error can name the offending value and the allowed set.
type StockHistoryRequest struct {
	Symbol   string `json:"symbol" validate:"required"`
	Period   string `json:"period" default:"1mo"`
	Interval string `json:"interval" default:"1d"`
}
