// Package session encodes the client-held session into a cookie and back.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/pkg/encryption"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "gd_session"

	// DefaultMaxAge is the session lifetime (7 days).
	DefaultMaxAge = 7 * 24 * time.Hour
)

// Config holds the configuration for the session codec.
type Config struct {
	// Sealer encodes the JSON payload. Defaults to plain base64.
	Sealer encryption.Sealer
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only (production).
	Secure bool
}

// Codec converts sessions to cookie tokens and back.
// It holds no state beyond its configuration and is safe for concurrent use.
type Codec struct {
	sealer encryption.Sealer
	maxAge time.Duration
	secure bool
}

// NewCodec creates a new session codec.
func NewCodec(cfg *Config) *Codec {
	if cfg == nil {
		cfg = &Config{}
	}

	sealer := cfg.Sealer
	if sealer == nil {
		sealer = encryption.NewBase64Sealer()
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	return &Codec{
		sealer: sealer,
		maxAge: maxAge,
		secure: cfg.Secure,
	}
}

// Encode serializes a session into an opaque token.
func (c *Codec) Encode(s *models.Session) (string, error) {
	if s == nil {
		return "", fmt.Errorf("session is required")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	token, err := c.sealer.Seal(data)
	if err != nil {
		return "", fmt.Errorf("failed to seal session: %w", err)
	}
	return token, nil
}

// Decode parses a token. Malformed tokens yield (nil, false), never an error.
func (c *Codec) Decode(token string) (*models.Session, bool) {
	if token == "" {
		return nil, false
	}

	data, err := c.sealer.Open(token)
	if err != nil {
		return nil, false
	}

	var s *models.Session
	if err := json.Unmarshal(data, &s); err != nil || s == nil {
		return nil, false
	}
	return s, true
}

// Write creates the session cookie on the response.
func (c *Codec) Write(w http.ResponseWriter, s *models.Session) error {
	token, err := c.Encode(s)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.maxAge / time.Second),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the session carried by the request, if any.
func (c *Codec) Read(r *http.Request) (*models.Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	return c.Decode(cookie.Value)
}

// Clear deletes the session cookie.
func (c *Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
