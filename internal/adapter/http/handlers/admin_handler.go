package handlers

import (
	"errors"
	"net/http"

	request "cctv_estimator/internal/adapter/http/dto/request"
	response "cctv_estimator/internal/adapter/http/dto/response"
	"cctv_estimator/internal/adapter/http/middleware"
	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Email and password are required", http.StatusBadRequest)
)

type AdminHandler struct {
	usecase  usecase.IAdminAuthUseCase
	sessions *middleware.SessionManager
}

func NewAdminHandler(uc usecase.IAdminAuthUseCase, sessions *middleware.SessionManager) *AdminHandler {
	return &AdminHandler{usecase: uc, sessions: sessions}
}

// Login godoc
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AdminLoginRequest  true  "Credentials"
// @Success      200      {object}  response.AdminSessionResponse
// @Failure      401      {object}  pkg.HTTPError
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	sess, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.sessions.Save(c, sess); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdminSession(sess))
}

func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdminSession(entities.AdminSession{}))
}

// Session reports the caller's admin session without requiring one.
func (h *AdminHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromAdminSession(h.sessions.Load(c)))
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
