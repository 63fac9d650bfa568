// Package main is the entry point for the GoodData Portal Service.
// @title GoodData Portal Service API
// @version 1.0
// @description Session-holding proxy in front of the GoodData platform: login, dashboard browsing, filter lookups and report execution

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gdportal/portal-service/docs"
	"github.com/gdportal/portal-service/internal/api/handlers"
	"github.com/gdportal/portal-service/internal/api/middleware"
	"github.com/gdportal/portal-service/internal/api/routes"
	"github.com/gdportal/portal-service/internal/config"
	"github.com/gdportal/portal-service/internal/core/cache"
	"github.com/gdportal/portal-service/internal/infrastructure/cache/memory"
	rediscache "github.com/gdportal/portal-service/internal/infrastructure/cache/redis"
	"github.com/gdportal/portal-service/internal/pkg/encryption"
	"github.com/gdportal/portal-service/internal/pkg/logging"
	"github.com/gdportal/portal-service/internal/services/gooddata"
	"github.com/gdportal/portal-service/internal/services/loginguard"
	"github.com/gdportal/portal-service/internal/services/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize cache using factory pattern
	cacheClient, err := createCache(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache")
	}
	defer cacheClient.Close()

	// Initialize session codec
	sealer, err := encryption.NewSealer(cfg.Session.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session sealer")
	}
	if cfg.Session.EncryptionKey == "" {
		log.Warn().Msg("SESSION_ENCRYPTION_KEY not set, session cookies are plain base64")
	}

	codec := session.NewCodec(&session.Config{
		Sealer: sealer,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Server.IsProduction(),
	})

	// Initialize GoodData client
	client, breaker := createGoodDataClient(cfg)

	guard := loginguard.New(&loginguard.Config{
		Cache:       cacheClient,
		MaxFailures: cfg.Login.MaxFailures,
		Window:      cfg.Login.FailureWindow,
	})

	var loginLimiter *middleware.RateLimiter
	if cfg.Login.RatePerMinute > 0 {
		loginLimiter = middleware.NewRateLimiter(cfg.Login.RatePerMinute)
		go loginLimiter.StartCleanup(ctx, 5*time.Minute)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cfg, cacheClient, client, breaker, codec, guard, loginLimiter)

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", cfg.Server.Address()).Str("gooddata", cfg.GoodData.BaseURL).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	stop()

	// Report executions may poll for up to a minute; give them time to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// createCache creates a cache based on the configuration.
func createCache(cfg config.CacheConfig) (cache.Cache, error) {
	switch cache.Type(cfg.Type) {
	case cache.TypeRedis:
		c, err := rediscache.NewCache(rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case cache.TypeMemory:
		c, err := memory.NewCache(memory.Config{
			Size:       cfg.Size,
			DefaultTTL: cfg.TTL,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// createGoodDataClient creates the remote API client, wrapped in a circuit
// breaker when enabled. The breaker is nil otherwise.
func createGoodDataClient(cfg *config.Config) (gooddata.Client, *gooddata.CircuitBreakerClient) {
	client := gooddata.NewClient(&gooddata.ClientConfig{
		BaseURL:      cfg.GoodData.BaseURL,
		Timeout:      cfg.GoodData.Timeout,
		MaxRetries:   cfg.GoodData.MaxRetries,
		PollInterval: cfg.GoodData.PollInterval,
	})

	if !cfg.Breaker.Enabled {
		return client, nil
	}

	breaker := gooddata.NewCircuitBreakerClient(client, &gooddata.BreakerConfig{
		MinRequests:  uint32(cfg.Breaker.MinRequests),
		FailureRatio: cfg.Breaker.FailureRatio,
		Timeout:      cfg.Breaker.Timeout,
	})
	return breaker, breaker
}

// setupRouter creates and configures the Gin router.
func setupRouter(
	cfg *config.Config,
	cacheClient cache.Cache,
	client gooddata.Client,
	breaker *gooddata.CircuitBreakerClient,
	codec *session.Codec,
	guard loginguard.Guard,
	loginLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()

	// Create handlers
	var breakerState handlers.BreakerState
	if breaker != nil {
		breakerState = breaker
	}
	healthHandler := handlers.NewHealthHandler(cacheClient, breakerState)

	// Setup routes
	routesCfg := &routes.Config{
		HealthHandler:     healthHandler,
		AuthHandler:       handlers.NewAuthHandler(client, codec, guard),
		ProjectsHandler:   handlers.NewProjectsHandler(client),
		FiltersHandler:    handlers.NewFiltersHandler(client),
		ReportsHandler:    handlers.NewReportsHandler(client),
		SessionMiddleware: middleware.NewSessionMiddleware(codec),
		LoginLimiter:      loginLimiter,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins))

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
