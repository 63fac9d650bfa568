// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
)

// ErrorMiddleware handles error recovery and formatting.
type ErrorMiddleware struct{}

// NewErrorMiddleware creates a new ErrorMiddleware.
func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Recovery returns a gin middleware that recovers from panics.
func (m *ErrorMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetRequestLogger(c)
				logger.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "internal server error",
					Code:  domainerrors.ErrCodeInternal,
				})
			}
		}()
		c.Next()
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HandleError maps err to its HTTP status and writes the error body.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	logger := GetRequestLogger(c)

	if domainErr, ok := domainerrors.GetDomainError(err); ok {
		message := domainErr.Error()
		if domainErr.Code == domainerrors.ErrCodeInternal {
			logger.Error().Err(err).Msg("internal error")
			message = domainErr.Message
		}
		c.AbortWithStatusJSON(domainErr.HTTPStatus, ErrorResponse{
			Error: message,
			Code:  domainErr.Code,
		})
		return
	}

	// Transport failures and other unclassified errors are remote-call failures.
	logger.Error().Err(err).Msg("unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error: err.Error(),
		Code:  domainerrors.ErrCodeInternal,
	})
}

// NotFound returns a 404 handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "resource not found: " + c.Request.URL.Path,
			Code:  "NOT_FOUND",
		})
	}
}

// MethodNotAllowed returns a 405 handler.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Error: "method not allowed: " + c.Request.Method,
			Code:  "METHOD_NOT_ALLOWED",
		})
	}
}
