package api

import (
	"net/http"

	models "QuoteLens/internal/domain/models"
	"QuoteLens/internal/usecase"
	xhttp "QuoteLens/pkg/http"
	xlogger "QuoteLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ToolsEchoHandler exposes the three Yahoo Finance tools over HTTP. Every
// tool invocation answers 200 with a ToolResult; hard pipeline errors set
// IsError, soft failures are ordinary text results.
type ToolsEchoHandler struct {
	logger  *xlogger.Logger
	quote   *usecase.QuoteUseCase
	market  *usecase.MarketUseCase
	history *usecase.HistoryUseCase
}

func NewToolsEchoHandler(logger *xlogger.Logger, quote *usecase.QuoteUseCase, market *usecase.MarketUseCase, history *usecase.HistoryUseCase) *ToolsEchoHandler {
	return &ToolsEchoHandler{logger: logger, quote: quote, market: market, history: history}
}

func (h *ToolsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/tools")
	g.POST("/yahoo_stock_quote", h.StockQuote)
	g.POST("/yahoo_market_data", h.MarketData)
	g.POST("/yahoo_stock_history", h.StockHistory)
	e.GET("/healthz", h.Healthz)
}

func (h *ToolsEchoHandler) StockQuote(c echo.Context) error {
	req := &models.StockQuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	text, err := h.quote.Report(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("stock quote tool failed",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return toolError(c, err)
	}
	return toolText(c, text)
}

func (h *ToolsEchoHandler) MarketData(c echo.Context) error {
	req := &models.MarketDataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	text, err := h.market.Report(c.Request().Context(), req.Indices)
	if err != nil {
		h.logger.Error("market data tool failed",
			xlogger.Strings("indices", req.Indices),
			xlogger.Error(err),
		)
		return toolError(c, err)
	}
	return toolText(c, text)
}

func (h *ToolsEchoHandler) StockHistory(c echo.Context) error {
	req := &models.StockHistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	text, err := h.history.Report(c.Request().Context(), req.Symbol, req.Period, req.Interval)
	if err != nil {
		h.logger.Error("stock history tool failed",
			xlogger.String("symbol", req.Symbol),
			xlogger.String("period", req.Period),
			xlogger.String("interval", req.Interval),
			xlogger.Error(err),
		)
		return toolError(c, err)
	}
	return toolText(c, text)
}

func (h *ToolsEchoHandler) Healthz(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func toolText(c echo.Context, text string) error {
	return c.JSON(http.StatusOK, xhttp.ToolResult{Content: text})
}

func toolError(c echo.Context, err error) error {
	return c.JSON(http.StatusOK, xhttp.ToolResult{Content: "Error: " + err.Error(), IsError: true})
}
