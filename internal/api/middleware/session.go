package middleware

import (
	"github.com/gin-gonic/gin"

	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/services/session"
)

const sessionKey = "session"

// SessionMiddleware resolves the session cookie of each request.
type SessionMiddleware struct {
	codec *session.Codec
}

// NewSessionMiddleware creates a new SessionMiddleware.
func NewSessionMiddleware(codec *session.Codec) *SessionMiddleware {
	return &SessionMiddleware{codec: codec}
}

// RequireSession aborts with 401 unless the request carries a valid session.
// A malformed cookie counts as no session.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.codec.Read(c.Request)
		if !ok || !s.IsValid() {
			HandleError(c, domainerrors.NewUnauthorizedError("not authenticated"))
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// GetSession retrieves the session stored by RequireSession.
func GetSession(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	s, ok := value.(*models.Session)
	return s, ok
}
