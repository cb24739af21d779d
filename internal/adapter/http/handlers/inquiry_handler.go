package handlers

import (
	"errors"
	"net/http"
	"time"

	request "cctv_estimator/internal/adapter/http/dto/request"
	response "cctv_estimator/internal/adapter/http/dto/response"
	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase"
	"cctv_estimator/pkg"

	"github.com/gin-gonic/gin"
)

const (
	inquiriesEvent    = "inquiries"
	streamKeepAlive   = 25 * time.Second
	streamPingComment = "ping"
)

var (
	errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)
	errInvalidStatusPayload  = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// InquiryHandler serves the public contact form and the admin inquiry list.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// SubmitContact godoc
// @Summary      Send a contact inquiry
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ContactRequest  true  "Contact form"
// @Success      200      {object}  response.ContactResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /contact [post]
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SubmitContact(c.Request.Context(), usecase.ContactRequest{
		Name:    payload.Name,
		Phone:   payload.Phone,
		Message: payload.Message,
	})
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContactResult(res))
}

// ListInquiries godoc
// @Summary      List inquiries, newest first
// @Tags         admin
// @Produce      json
// @Security     AdminSession
// @Success      200  {array}   response.InquiryResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /admin/inquiries [get]
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	list, err := h.usecase.ListInquiries(c.Request.Context())
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInquiries(list))
}

// StreamInquiries godoc
// @Summary      Stream the inquiry list
// @Description  Pushes the full inquiry list as a server-sent "inquiries" event on subscribe and after every change, until the client disconnects.
// @Tags         admin
// @Produce      text/event-stream
// @Security     AdminSession
// @Success      200  {array}   response.InquiryResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /admin/inquiries/stream [get]
func (h *InquiryHandler) StreamInquiries(c *gin.Context) {
	ctx := c.Request.Context()

	// Only the newest snapshot matters; an unread one is replaced.
	updates := make(chan []entities.Inquiry, 1)
	push := func(list []entities.Inquiry) {
		for {
			select {
			case updates <- list:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	}

	cancel, err := h.usecase.SubscribeInquiries(ctx, push)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case list := <-updates:
			c.SSEvent(inquiriesEvent, response.FromInquiries(list))
		case <-keepAlive.C:
			_, _ = c.Writer.WriteString(": " + streamPingComment + "\n\n")
		}
		c.Writer.Flush()
	}
}

// UpdateStatus godoc
// @Summary      Change an inquiry's status
// @Tags         admin
// @Accept       json
// @Security     AdminSession
// @Param        id       path      string                        true  "Inquiry ID"
// @Param        payload  body      request.InquiryStatusRequest  true  "pending, in_progress or complete"
// @Success      204
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /admin/inquiries/{id}/status [patch]
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var payload request.InquiryStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus()); err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteInquiry godoc
// @Summary      Delete an inquiry
// @Tags         admin
// @Security     AdminSession
// @Param        id   path      string  true  "Inquiry ID"
// @Success      204
// @Failure      401  {object}  pkg.HTTPError
// @Router       /admin/inquiries/{id} [delete]
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	if err := h.usecase.DeleteInquiry(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNameRequired):
		return pkg.NewDomainErrorSimple("NAME_REQUIRED", "Please enter your name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhoneRequired):
		return pkg.NewDomainErrorSimple("PHONE_REQUIRED", "Please enter your phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Please enter a valid 10-digit phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMessageRequired):
		return pkg.NewDomainErrorSimple("MESSAGE_REQUIRED", "Please enter a message", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInquiryID), errors.Is(err, usecase.ErrInvalidInquiryStatus):
		return pkg.ErrInvalidInput
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
