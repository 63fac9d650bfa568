package gooddata

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
)

// cookieStart matches the beginning of a new cookie inside a comma-joined Set-Cookie value.
var cookieStart = regexp.MustCompile(`^\s*\w+=`)

// Login authenticates against the remote API.
// Any non-2xx answer is an authentication failure carrying the remote status.
func (c *client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, domainerrors.NewValidationError("username and password are required", "")
	}

	header, data, err := c.do(ctx, request{
		operation: "login",
		method:    http.MethodPost,
		path:      "/gdc/account/login",
		body: loginRequest{PostUserLogin: postUserLogin{
			Login:    username,
			Password: password,
			Remember: 1,
		}},
	})
	if err != nil {
		if domainErr, ok := domainerrors.GetDomainError(err); ok && domainErr.UpstreamStatus > 0 {
			return nil, domainerrors.NewAuthenticationError(domainErr.UpstreamStatus)
		}
		return nil, err
	}

	var payload map[string]any
	if err := decode("login", data, &payload); err != nil {
		return nil, err
	}

	result := &LoginResult{
		Credential: extractCredential(header.Values("Set-Cookie")),
		SubjectID:  profileID(payload),
	}

	c.logger.Debug().
		Bool("cookies_captured", result.Credential != "").
		Str("subject_id", result.SubjectID).
		Msg("gooddata login succeeded")

	return result, nil
}

// extractCredential builds a Cookie header value from Set-Cookie values.
// A value may itself hold several cookies joined by commas, so each one is
// split again wherever a comma is followed by a "name=" pattern.
func extractCredential(setCookies []string) string {
	var pairs []string
	for _, value := range setCookies {
		for _, cookie := range splitSetCookie(value) {
			pair, _, _ := strings.Cut(cookie, ";")
			if pair = strings.TrimSpace(pair); pair != "" {
				pairs = append(pairs, pair)
			}
		}
	}
	return strings.Join(pairs, "; ")
}

// splitSetCookie splits a comma-joined Set-Cookie value. Commas inside
// attribute values such as Expires are kept because no "name=" follows them.
func splitSetCookie(value string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(value); i++ {
		if value[i] == ',' && cookieStart.MatchString(value[i+1:]) {
			parts = append(parts, value[start:i])
			start = i + 1
		}
	}
	return append(parts, value[start:])
}

// profileID returns the last path segment of userLogin.profile, or "".
func profileID(payload map[string]any) string {
	userLogin, ok := payload["userLogin"].(map[string]any)
	if !ok {
		return ""
	}
	profile, ok := userLogin["profile"].(string)
	if !ok || profile == "" {
		return ""
	}
	return lastSegment(profile)
}
