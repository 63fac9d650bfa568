package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdportal/portal-service/internal/api/middleware"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/services/session"
	"github.com/gdportal/portal-service/internal/testutils"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorResponse {
	t.Helper()
	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleError_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", domainerrors.NewValidationError("uri is required", ""), http.StatusBadRequest, domainerrors.ErrCodeValidation, "uri is required"},
		{"unauthorized", domainerrors.NewUnauthorizedError("not authenticated"), http.StatusUnauthorized, domainerrors.ErrCodeUnauthorized, "not authenticated"},
		{"login rejected", domainerrors.NewAuthenticationError(401), http.StatusUnauthorized, domainerrors.ErrCodeAuthentication, "login failed: status 401"},
		{"throttled", domainerrors.NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, domainerrors.ErrCodeTooManyRequests, "slow down"},
		{"upstream", domainerrors.NewUpstreamError(404), http.StatusInternalServerError, domainerrors.ErrCodeUpstream, "request failed: status 404: Not Found"},
		{"timeout", domainerrors.NewPollTimeoutError(30), http.StatusInternalServerError, domainerrors.ErrCodeTimeout, "report execution timed out after 30 attempts"},
		{"internal hides details", domainerrors.NewInternalError("failed to decode", errors.New("secret detail")), http.StatusInternalServerError, domainerrors.ErrCodeInternal, "failed to decode"},
		{"plain error", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, domainerrors.ErrCodeInternal, "dial tcp: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutils.NewTestContext()
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			middleware.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestRecovery(t *testing.T) {
	router := testutils.SetupTestRouter()
	router.Use(middleware.NewErrorMiddleware().Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := testutils.PerformRequest(router, http.MethodGet, "/panic", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domainerrors.ErrCodeInternal, decodeError(t, w).Code)
}

func TestRecovery_LogsWithRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	mw := middleware.NewLoggingMiddlewareWithLogger(zerolog.New(&buf))

	router := testutils.SetupTestRouter()
	router.Use(mw.RequestLogger(), middleware.NewErrorMiddleware().Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := testutils.PerformRequest(router, http.MethodGet, "/panic", nil, map[string]string{middleware.RequestIDHeader: "req-42"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "req-42")
	assert.Contains(t, buf.String(), "boom")
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := middleware.NewLoggingMiddlewareWithLogger(zerolog.New(&buf))

	router := testutils.SetupTestRouter()
	router.Use(mw.RequestLogger(), mw.Logger())
	router.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, middleware.GetRequestID(c))
		c.Status(http.StatusOK)
	})

	w := testutils.PerformRequest(router, http.MethodGet, "/ping?q=secret", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, requestID, entry["request_id"])
	assert.Equal(t, "/ping", entry["path"])
	assert.NotContains(t, buf.String(), "secret")
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	mw := middleware.NewLoggingMiddlewareWithLogger(zerolog.Nop())
	router := testutils.SetupTestRouter()
	router.Use(mw.RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := testutils.PerformRequest(router, http.MethodGet, "/ping", nil, map[string]string{middleware.RequestIDHeader: "abc-123"})

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRequireSession(t *testing.T) {
	codec := session.NewCodec(nil)
	router := testutils.SetupTestRouter()
	router.GET("/private", middleware.NewSessionMiddleware(codec).RequireSession(), func(c *gin.Context) {
		s, ok := middleware.GetSession(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": s.Username})
	})

	t.Run("missing cookie", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/private", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, domainerrors.ErrCodeUnauthorized, decodeError(t, w).Code)
	})

	t.Run("malformed cookie", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/private", nil, map[string]string{
			"Cookie": session.CookieName + "=garbage",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("session without credential", func(t *testing.T) {
		token, err := codec.Encode(models.NewSession("", "p", "ana"))
		require.NoError(t, err)
		w := testutils.PerformRequest(router, http.MethodGet, "/private", nil, map[string]string{
			"Cookie": session.CookieName + "=" + token,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		token, err := codec.Encode(models.NewSession("GDCAuthTT=x", "p", "ana"))
		require.NoError(t, err)
		w := testutils.PerformRequest(router, http.MethodGet, "/private", nil, map[string]string{
			"Cookie": session.CookieName + "=" + token,
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"ana"}`, w.Body.String())
	})
}

func TestCORS(t *testing.T) {
	router := testutils.SetupTestRouter()
	router.Use(middleware.NewCORSMiddleware(middleware.DefaultCORSConfig([]string{"https://portal.example.com"})))
	router.GET("/api/projects", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := testutils.PerformRequest(router, http.MethodGet, "/api/projects", nil, map[string]string{"Origin": "https://portal.example.com"})
	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = testutils.PerformRequest(router, http.MethodGet, "/api/projects", nil, map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = testutils.PerformRequest(router, http.MethodOptions, "/api/projects", nil, map[string]string{"Origin": "https://portal.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(2)
	router := testutils.SetupTestRouter()
	router.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := testutils.PerformRequest(router, http.MethodPost, "/login", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := testutils.PerformRequest(router, http.MethodPost, "/login", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, domainerrors.ErrCodeTooManyRequests, decodeError(t, w).Code)
}

func TestRateLimiter_PerIP(t *testing.T) {
	limiter := middleware.NewRateLimiter(1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
	assert.Equal(t, 2, limiter.Size())

	limiter.Cleanup()
	assert.Equal(t, 2, limiter.Size(), "recently used limiters are kept")
}
