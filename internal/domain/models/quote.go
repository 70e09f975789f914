package models

// QuoteRecord is a normalized quote snapshot. Every numeric field is
// independently optional; the chart endpoint never populates AverageVolume,
// MarketCap, TrailingPE, EPS, or DividendYield, so those render "N/A".
type QuoteRecord struct {
	Symbol           string
	DisplayName      string
	Price            *float64
	PreviousClose    *float64
	Open             *float64
	DayLow           *float64
	DayHigh          *float64
	FiftyTwoWeekLow  *float64
	FiftyTwoWeekHigh *float64
	Volume           *float64
	AverageVolume    *float64
	MarketCap        *float64
	TrailingPE       *float64
	EPS              *float64
	DividendYield    *float64

	// Degraded marks a snapshot built without the regular market price,
	// reconstructed from the close series instead.
	Degraded bool
}

// Change returns price minus previous close, or nil when either operand is
// absent. No arithmetic is attempted on missing fields.
func (q *QuoteRecord) Change() *float64 {
	if q.Price == nil || q.PreviousClose == nil {
		return nil
	}
	d := *q.Price - *q.PreviousClose
	return &d
}

// ChangePercent returns the change as a fraction of the previous close.
func (q *QuoteRecord) ChangePercent() *float64 {
	if q.Price == nil || q.PreviousClose == nil || *q.PreviousClose == 0 {
		return nil
	}
	p := (*q.Price - *q.PreviousClose) / *q.PreviousClose
	return &p
}

// NewQuoteRecord extracts a QuoteRecord from a chart result. When the
// metadata block carries a regular market price it builds the full snapshot
// from metadata plus the first quote-series point; when the price is missing
// it falls back to a degraded snapshot reconstructed from the close series.
// Returns nil when the result holds nothing usable.
func NewQuoteRecord(symbol string, res *ChartResult) *QuoteRecord {
	if res == nil {
		return nil
	}

	meta := res.Meta
	if meta != nil && meta.RegularMarketPrice != nil {
		rec := &QuoteRecord{
			Symbol:           displaySymbol(symbol, meta),
			DisplayName:      displayName(symbol, meta),
			Price:            meta.RegularMarketPrice,
			PreviousClose:    previousClose(meta),
			DayLow:           meta.RegularMarketDayLow,
			DayHigh:          meta.RegularMarketDayHigh,
			FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
			FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
			Volume:           meta.RegularMarketVolume,
		}
		if q := res.firstQuote(); q != nil {
			if len(q.Open) > 0 {
				rec.Open = q.Open[0]
			}
			if rec.DayLow == nil && len(q.Low) > 0 {
				rec.DayLow = q.Low[0]
			}
			if rec.DayHigh == nil && len(q.High) > 0 {
				rec.DayHigh = q.High[0]
			}
			if rec.Volume == nil && len(q.Volume) > 0 {
				rec.Volume = q.Volume[0]
			}
		}
		return rec
	}

	// Degraded shape: no regular market price in the metadata block.
	price := res.lastClose()
	if price == nil {
		return nil
	}
	return &QuoteRecord{
		Symbol:        displaySymbol(symbol, meta),
		DisplayName:   displayName(symbol, meta),
		Price:         price,
		PreviousClose: previousClose(meta),
		Degraded:      true,
	}
}

// IndexRecord is the subset of a quote snapshot rendered for a market index.
type IndexRecord struct {
	Symbol        string
	DisplayName   string
	Price         *float64
	PreviousClose *float64
	DayLow        *float64
	DayHigh       *float64
}

// Change returns price minus previous close, or nil when either is absent.
func (r *IndexRecord) Change() *float64 {
	if r.Price == nil || r.PreviousClose == nil {
		return nil
	}
	d := *r.Price - *r.PreviousClose
	return &d
}

// ChangePercent returns the change as a fraction of the previous close.
func (r *IndexRecord) ChangePercent() *float64 {
	if r.Price == nil || r.PreviousClose == nil || *r.PreviousClose == 0 {
		return nil
	}
	p := (*r.Price - *r.PreviousClose) / *r.PreviousClose
	return &p
}

// NewIndexRecord extracts an IndexRecord from a chart result. Only the
// metadata shape is accepted; results without a regular market price yield
// nil and are skipped by the batch.
func NewIndexRecord(symbol string, res *ChartResult) *IndexRecord {
	if res == nil || res.Meta == nil || res.Meta.RegularMarketPrice == nil {
		return nil
	}
	meta := res.Meta
	return &IndexRecord{
		Symbol:        displaySymbol(symbol, meta),
		DisplayName:   displayName(symbol, meta),
		Price:         meta.RegularMarketPrice,
		PreviousClose: previousClose(meta),
		DayLow:        meta.RegularMarketDayLow,
		DayHigh:       meta.RegularMarketDayHigh,
	}
}

func displaySymbol(fallback string, meta *ChartMeta) string {
	if meta != nil && meta.Symbol != "" {
		return meta.Symbol
	}
	return fallback
}

func displayName(fallback string, meta *ChartMeta) string {
	if meta != nil {
		if meta.LongName != "" {
			return meta.LongName
		}
		if meta.ShortName != "" {
			return meta.ShortName
		}
		if meta.Symbol != "" {
			return meta.Symbol
		}
	}
	return fallback
}

func previousClose(meta *ChartMeta) *float64 {
	if meta == nil {
		return nil
	}
	if meta.ChartPreviousClose != nil {
		return meta.ChartPreviousClose
	}
	return meta.PreviousClose
}
