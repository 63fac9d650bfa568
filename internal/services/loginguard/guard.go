// Package loginguard throttles logins for usernames with repeated failures.
package loginguard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gdportal/portal-service/internal/core/cache"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/pkg/metrics"
)

const keyPrefix = "login:failures:"

// Guard limits login attempts per username. Every attempt reserves a slot
// before the credentials are checked, so concurrent attempts cannot go past
// the limit. A slot kept after a wrong password counts as a failure.
type Guard interface {
	// Acquire reserves an attempt for username and returns a too-many-requests
	// error once the failures in the window have reached the limit.
	Acquire(ctx context.Context, username string) error
	// Release returns an attempt whose outcome said nothing about the password.
	Release(ctx context.Context, username string) error
	// Reset clears the attempts of username after a successful login.
	Reset(ctx context.Context, username string) error
}

// Config holds the configuration for the login guard.
type Config struct {
	Cache cache.Cache
	// MaxFailures is the number of failures that locks a username. Zero disables the guard.
	MaxFailures int
	// Window is how long failures are remembered, counted from the first one.
	Window time.Duration
}

// guard implements the Guard interface.
type guard struct {
	cache       cache.Cache
	maxFailures int64
	window      time.Duration
}

// New creates a new login guard. A guard without a cache or limit allows everything.
func New(cfg *Config) Guard {
	if cfg == nil || cfg.Cache == nil || cfg.MaxFailures <= 0 {
		return noopGuard{}
	}

	window := cfg.Window
	if window <= 0 {
		window = 15 * time.Minute
	}

	return &guard{
		cache:       cfg.Cache,
		maxFailures: int64(cfg.MaxFailures),
		window:      window,
	}
}

// key hashes the normalized username so that raw logins never reach the cache.
func key(username string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(username))))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Acquire fails open when the cache is unavailable.
func (g *guard) Acquire(ctx context.Context, username string) error {
	attempts, err := g.cache.Increment(ctx, key(username), g.window)
	if err != nil {
		log.Warn().Err(err).Msg("login guard unavailable, allowing login")
		return nil
	}

	if attempts > g.maxFailures {
		if attempts == g.maxFailures+1 {
			log.Warn().Int64("failures", g.maxFailures).Msg("login locked after repeated failures")
		}
		metrics.LoginRejections.WithLabelValues("throttled").Inc()
		return domainerrors.NewTooManyRequestsError("too many failed login attempts, try again later")
	}
	return nil
}

func (g *guard) Release(ctx context.Context, username string) error {
	_, err := g.cache.Decrement(ctx, key(username))
	return err
}

func (g *guard) Reset(ctx context.Context, username string) error {
	_, err := g.cache.Delete(ctx, key(username))
	return err
}

type noopGuard struct{}

func (noopGuard) Acquire(context.Context, string) error { return nil }
func (noopGuard) Release(context.Context, string) error { return nil }
func (noopGuard) Reset(context.Context, string) error   { return nil }
