package api

import (
	"net/http"

	reqdto "price-in-time/internal/handler/dto/request"
	resdto "price-in-time/internal/handler/dto/response"
	"price-in-time/internal/handler/httperr"
	"price-in-time/internal/pkg/errs"
	"price-in-time/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	prices queries.PricingQueries
	orders queries.OrderQueries
}

func NewPricingHandler(prices queries.PricingQueries, orders queries.OrderQueries) *PricingHandler {
	return &PricingHandler{prices: prices, orders: orders}
}

// @Summary Resolve SKU price
// @Description Price for a SKU at the current wall-clock time
// @Tags prices
// @Produce json
// @Param sku path string true "SKU"
// @Param product_type query string true "Product type key"
// @Param base_number query string true "Base catalog price amount"
// @Param base_currency query string true "Base catalog price currency"
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} map[string]string
// @Router /skus/{sku}/price [get]
func (h *PricingHandler) ResolvePrice(c *gin.Context) {
	req := queries.ResolvePriceRequest{
		SKU:          c.Param("sku"),
		ProductType:  c.Query("product_type"),
		BaseNumber:   c.Query("base_number"),
		BaseCurrency: c.Query("base_currency"),
	}
	if req.ProductType == "" || req.BaseNumber == "" || req.BaseCurrency == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation,
			"product_type, base_number and base_currency are required", nil)
		return
	}

	view, err := h.prices.ResolvePrice(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid base price", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Price resolution failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceView(req.SKU, view))
}

// @Summary Quote order adjustments
// @Description Free-shipping decision for an order at the current wall-clock time
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.OrderQuoteRequest true "Order lines and shipment"
// @Success 200 {object} resdto.OrderQuoteResponse
// @Failure 400 {object} map[string]string
// @Router /orders/quote [post]
func (h *PricingHandler) QuoteOrder(c *gin.Context) {
	var req reqdto.OrderQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.orders.Quote(c.Request.Context(), req.ToQuery())
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shipment amount", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Order quote failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderQuoteView(req.OrderID, view))
}
