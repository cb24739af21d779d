package handlers

import (
	"errors"
	"net/http"

	request "cctv_estimator/internal/adapter/http/dto/request"
	response "cctv_estimator/internal/adapter/http/dto/response"
	"cctv_estimator/internal/domain/estimate"
	"cctv_estimator/internal/usecase"
	"cctv_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimatorHandler serves the public estimator: live calculation, submission
// and text export.

type EstimatorHandler struct {
	usecase usecase.IEstimatorUseCase
}

func NewEstimatorHandler(uc usecase.IEstimatorUseCase) *EstimatorHandler {
	return &EstimatorHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Calculate an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Selections"
// @Success      200      {object}  response.BreakdownResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimates/calculate [post]
func (h *EstimatorHandler) Calculate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	b := h.usecase.Calculate(c.Request.Context(), payload.ToSelectionSet())
	c.JSON(http.StatusOK, response.FromBreakdown(b))
}

// Submit godoc
// @Summary      Submit an estimate
// @Description  Validates the customer, returns the WhatsApp hand-off link and saves the estimate as an inquiry.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Selections and customer"
// @Success      200      {object}  response.SubmitEstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimates/submit [post]
func (h *EstimatorHandler) Submit(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToSelectionSet())
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmitResult(res))
}

// Export godoc
// @Summary      Download an estimate as text
// @Tags         estimates
// @Accept       json
// @Produce      plain
// @Param        payload  body      request.EstimateRequest  true  "Selections"
// @Success      200      {string}  string
// @Router       /estimates/export [post]
func (h *EstimatorHandler) Export(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	text := h.usecase.Export(c.Request.Context(), payload.ToSelectionSet())
	c.Header("Content-Disposition", `attachment; filename="`+estimate.ExportFileName+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func mapEstimatorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNameRequired):
		return pkg.NewDomainErrorSimple("NAME_REQUIRED", "Please enter your name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhoneRequired):
		return pkg.NewDomainErrorSimple("PHONE_REQUIRED", "Please enter your phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Please enter a valid 10-digit phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "Submission already in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
