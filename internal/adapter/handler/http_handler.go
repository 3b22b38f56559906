package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/core/service"
	"github.com/rl1809/sku-pricing/internal/logger"
)

type HTTPHandler struct {
	pricingService *service.PricingService
	log            *logger.Logger
}

type SetPriceHTTPRequest struct {
	SKU        *uint32 `json:"sku" binding:"required"`
	NetPrice   *uint32 `json:"net_retail_price" binding:"required"`
	Vat        string  `json:"vat" binding:"required"`
	GrossPrice *uint32 `json:"gross_retail_price"`
	CreatedBy  string  `json:"created_by" binding:"required"`
}

type PriceHTTPResponse struct {
	SKU        uint32 `json:"sku"`
	NetPrice   uint32 `json:"net_retail_price"`
	Vat        string `json:"vat"`
	GrossPrice uint32 `json:"gross_retail_price"`
}

type HistoryHTTPResponse struct {
	NetPrice   uint32    `json:"net_retail_price"`
	Vat        string    `json:"vat"`
	GrossPrice uint32    `json:"gross_retail_price"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type ErrorHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(pricingService *service.PricingService, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{pricingService: pricingService, log: log}
}

// Router builds the gin engine for the JSON gateway.
func (h *HTTPHandler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", h.HealthCheck)

	api := r.Group("/api")
	api.POST("/prices", h.SetPrice)
	api.GET("/prices", h.GetPriceBulk)
	api.GET("/prices/:sku", h.GetPrice)
	api.GET("/prices/:sku/history", h.GetPriceHistory)
	api.GET("/price-changes", h.GetLatestPriceChanges)

	return r
}

func (h *HTTPHandler) SetPrice(c *gin.Context) {
	var req SetPriceHTTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorHTTPResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	record, err := h.pricingService.SetPrice(c.Request.Context(), service.SetPriceInput{
		SKU:        *req.SKU,
		NetPrice:   *req.NetPrice,
		TaxCode:    req.Vat,
		Actor:      req.CreatedBy,
		GrossPrice: req.GrossPrice,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPriceHTTPResponse(record))
}

func (h *HTTPHandler) GetPrice(c *gin.Context) {
	sku, ok := parseSKU(c, c.Param("sku"))
	if !ok {
		return
	}

	record, err := h.pricingService.GetPrice(c.Request.Context(), sku)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPriceHTTPResponse(record))
}

// GetPriceBulk serves GET /api/prices?sku=1&sku=2.
func (h *HTTPHandler) GetPriceBulk(c *gin.Context) {
	var skus []uint32
	for _, raw := range c.QueryArray("sku") {
		sku, ok := parseSKU(c, raw)
		if !ok {
			return
		}
		skus = append(skus, sku)
	}

	records, err := h.pricingService.GetPriceBulk(c.Request.Context(), skus)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]PriceHTTPResponse, 0, len(skus))
	for record := range records {
		out = append(out, toPriceHTTPResponse(record))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HTTPHandler) GetPriceHistory(c *gin.Context) {
	sku, ok := parseSKU(c, c.Param("sku"))
	if !ok {
		return
	}

	history, err := h.pricingService.GetPriceHistory(c.Request.Context(), sku)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]HistoryHTTPResponse, 0)
	for entry := range history {
		out = append(out, HistoryHTTPResponse{
			NetPrice:   entry.NetPrice,
			Vat:        entry.Tax.String(),
			GrossPrice: entry.GrossPrice,
			CreatedBy:  entry.CreatedBy,
			CreatedAt:  entry.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetLatestPriceChanges serves GET /api/price-changes?from=<RFC3339>&till=<RFC3339>.
func (h *HTTPHandler) GetLatestPriceChanges(c *gin.Context) {
	skus, err := h.pricingService.GetLatestPriceChanges(c.Request.Context(), c.Query("from"), c.Query("till"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skus": skus})
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HTTPHandler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidTaxCode), errors.Is(err, service.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDownstreamNotificationFailed):
		status = http.StatusBadGateway
	default:
		h.log.Errorw("request failed", "path", c.FullPath(), "error", err)
	}

	c.JSON(status, ErrorHTTPResponse{Message: err.Error()})
}

func parseSKU(c *gin.Context, raw string) (uint32, bool) {
	sku, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorHTTPResponse{Message: "invalid sku " + strconv.Quote(raw)})
		return 0, false
	}
	return uint32(sku), true
}

func toPriceHTTPResponse(p domain.SkuPrice) PriceHTTPResponse {
	return PriceHTTPResponse{
		SKU:        p.SKU,
		NetPrice:   p.NetPrice,
		Vat:        p.Tax.String(),
		GrossPrice: p.GrossPrice,
	}
}
