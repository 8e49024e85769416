package api

import (
	"errors"
	"net/http"

	"price-in-time/internal/domain/timeslot"
	reqdto "price-in-time/internal/handler/dto/request"
	resdto "price-in-time/internal/handler/dto/response"
	"price-in-time/internal/handler/httperr"
	"price-in-time/internal/pkg/config"
	"price-in-time/internal/pkg/errs"
	"price-in-time/internal/usecase/commands"
	"price-in-time/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotsHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
	cfg  config.SlotsConfig
}

func NewSlotsHandler(cmds commands.SlotCommands, q queries.SlotQueries, cfg config.Config) *SlotsHandler {
	return &SlotsHandler{cmds: cmds, q: q, cfg: cfg.Slots}
}

// @Summary Get slot configuration
// @Description Current slot configuration for a product type
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param type path string true "Product type key"
// @Success 200 {object} resdto.SlotSetResponse
// @Failure 404 {object} map[string]string
// @Router /product-types/{type}/slots [get]
func (h *SlotsHandler) Get(c *gin.Context) {
	productType := c.Param("type")

	view, err := h.q.GetProductTypeSlots(c.Request.Context(), productType)
	if err != nil {
		if errors.Is(err, errs.ErrSlotSetNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No slot configuration for product type", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slot configuration", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotSetView(view))
}

// @Summary Save slot configuration
// @Description Save a product type's slot configuration; rejects overlapping windows
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Product type key"
// @Param request body reqdto.SaveSlotsRequest true "Slot configuration"
// @Success 200 {object} resdto.SaveSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /product-types/{type}/slots [put]
func (h *SlotsHandler) Save(c *gin.Context) {
	productType := c.Param("type")

	var req reqdto.SaveSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if req.Enabled && len(req.Times) != h.cfg.SlotsPerType {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation,
			"Unexpected number of slots", gin.H{"expected": h.cfg.SlotsPerType, "got": len(req.Times)})
		return
	}

	result, err := h.cmds.SaveProductTypeSlots(c.Request.Context(), req.ToCommand(productType))
	if err != nil {
		abortSlotError(c, err, "Save slot configuration failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaveSlotsResult(productType, result))
}

// @Summary Save per-SKU slot prices
// @Description Replace the slot price override rows for one SKU
// @Tags prices
// @Accept json
// @Security BearerAuth
// @Param sku path string true "SKU"
// @Param request body reqdto.SaveSlotPricesRequest true "Price rows"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /skus/{sku}/slot-prices [put]
func (h *SlotsHandler) SavePrices(c *gin.Context) {
	sku := c.Param("sku")

	var req reqdto.SaveSlotPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SaveSkuSlotPrices(c.Request.Context(), sku, req.ProductType, req.ToInputs()); err != nil {
		if errors.Is(err, errs.ErrSlotSetNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No slot configuration for product type", nil)
			return
		}
		abortSlotError(c, err, "Save slot prices failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// abortSlotError maps kernel validation failures onto field-level HTTP
// errors so the admin UI can highlight the offending slot.
func abortSlotError(c *gin.Context, err error, msg string) {
	var overlapErr *timeslot.OverlapError
	if errors.As(err, &overlapErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"The value of times are overlapped.", gin.H{"position": overlapErr.ConflictIndex})
		return
	}

	var fieldErr *commands.SlotFieldError
	if errors.As(err, &fieldErr) {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid slot value", gin.H{"position": fieldErr.Position, "field": fieldErr.Field})
		return
	}

	if errors.Is(err, errs.ErrProductTypeEmpty) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Product type key required", nil)
		return
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
}
