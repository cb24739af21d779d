package handlers

import (
	"errors"
	"net/http"

	request "cctv_estimator/internal/adapter/http/dto/request"
	response "cctv_estimator/internal/adapter/http/dto/response"
	"cctv_estimator/internal/usecase"
	"cctv_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricePayload = pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid price table payload", http.StatusBadRequest)
)

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetPriceTable godoc
// @Summary      Current price table
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  entities.PriceTable
// @Router       /pricing [get]
func (h *PricingHandler) GetPriceTable(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GetPriceTable(c.Request.Context()))
}

// PutPriceTable replaces the table with the nested payload. Fields left out
// or not a valid price fall back to their defaults; negative numbers are
// rejected.
func (h *PricingHandler) PutPriceTable(c *gin.Context) {
	var payload request.PriceTableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}
	h.saveFields(c, payload.ToFields())
}

func (h *PricingHandler) GetPriceFields(c *gin.Context) {
	c.JSON(http.StatusOK, response.PriceFieldsResponse{Fields: h.usecase.GetPriceFields(c.Request.Context())})
}

func (h *PricingHandler) PutPriceFields(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}
	h.saveFields(c, payload)
}

func (h *PricingHandler) ResetPriceTable(c *gin.Context) {
	table, err := h.usecase.ResetPriceTable(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *PricingHandler) saveFields(c *gin.Context, fields map[string]any) {
	table, err := h.usecase.SavePriceFields(c.Request.Context(), fields)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, table)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPriceTable):
		return pkg.NewDomainError("INVALID_PRICE_INPUT", "Prices must be non-negative whole rupees", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
