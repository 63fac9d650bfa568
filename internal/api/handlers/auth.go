// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdportal/portal-service/internal/api/dto"
	"github.com/gdportal/portal-service/internal/api/middleware"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/pkg/metrics"
	"github.com/gdportal/portal-service/internal/services/gooddata"
	"github.com/gdportal/portal-service/internal/services/loginguard"
	"github.com/gdportal/portal-service/internal/services/session"
)

// AuthHandler handles login, logout and current-user endpoints.
type AuthHandler struct {
	client gooddata.Client
	codec  *session.Codec
	guard  loginguard.Guard
}

// NewAuthHandler creates a new AuthHandler. A nil guard disables login throttling.
func NewAuthHandler(client gooddata.Client, codec *session.Codec, guard loginguard.Guard) *AuthHandler {
	if guard == nil {
		guard = loginguard.New(nil)
	}
	return &AuthHandler{
		client: client,
		codec:  codec,
		guard:  guard,
	}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Authenticates against GoodData and stores the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetRequestLogger(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, domainerrors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if req.Username == "" || req.Password == "" {
		middleware.HandleError(c, domainerrors.NewValidationError("username and password are required", ""))
		return
	}

	if err := h.guard.Acquire(ctx, req.Username); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.client.Login(ctx, req.Username, req.Password)
	if err != nil {
		// A rejected password keeps its attempt reserved in the guard.
		if domainerrors.IsAuthenticationError(err) {
			metrics.LoginRejections.WithLabelValues("rejected").Inc()
			middleware.HandleError(c, err)
			return
		}

		if releaseErr := h.guard.Release(ctx, req.Username); releaseErr != nil {
			logger.Warn().Err(releaseErr).Msg("failed to release login attempt")
		}
		// Every failed login answers 401, including transport failures and an open circuit.
		logger.Warn().Err(err).Msg("login did not reach gooddata")
		middleware.HandleError(c, domainerrors.NewUnauthorizedError(err.Error()))
		return
	}

	// A session without a credential would be refused on the next request.
	if result.Credential == "" {
		logger.Warn().Msg("gooddata accepted login without setting cookies")
		middleware.HandleError(c, domainerrors.NewUnauthorizedError("login failed: no session cookie returned"))
		return
	}

	if err := h.guard.Reset(ctx, req.Username); err != nil {
		logger.Warn().Err(err).Msg("failed to reset login failures")
	}

	s := models.NewSession(result.Credential, result.SubjectID, req.Username)
	if err := h.codec.Write(c.Writer, s); err != nil {
		middleware.HandleError(c, domainerrors.NewInternalError("failed to write session", err))
		return
	}

	logger.Info().Str("subject_id", s.SubjectID).Msg("user logged in")

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:    s.User(),
		Message: "login successful",
	})
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Description Returns the user of the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		middleware.HandleError(c, domainerrors.NewUnauthorizedError("not authenticated"))
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{User: s.User()})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Clears the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.codec.Clear(c.Writer)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out"})
}
