// Package routes defines the HTTP routes for the GoodData Portal Service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gdportal/portal-service/internal/api/handlers"
	"github.com/gdportal/portal-service/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler     *handlers.HealthHandler
	AuthHandler       *handlers.AuthHandler
	ProjectsHandler   *handlers.ProjectsHandler
	FiltersHandler    *handlers.FiltersHandler
	ReportsHandler    *handlers.ReportsHandler
	SessionMiddleware *middleware.SessionMiddleware
	// LoginLimiter throttles the login endpoint per client IP. Optional.
	LoginLimiter *middleware.RateLimiter
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	// Health check routes (no session required)
	r.GET("/health", cfg.HealthHandler.Health)
	r.GET("/ready", cfg.HealthHandler.Ready)
	r.GET("/live", cfg.HealthHandler.Live)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			login := []gin.HandlerFunc{}
			if cfg.LoginLimiter != nil {
				login = append(login, cfg.LoginLimiter.Limit())
			}
			login = append(login, cfg.AuthHandler.Login)

			auth.POST("/login", login...)
			auth.POST("/logout", cfg.AuthHandler.Logout)
			auth.GET("/me", cfg.SessionMiddleware.RequireSession(), cfg.AuthHandler.Me)
		}

		protected := api.Group("")
		protected.Use(cfg.SessionMiddleware.RequireSession())

		projects := protected.Group("/projects")
		{
			projects.GET("", cfg.ProjectsHandler.ListProjects)
			projects.GET("/:projectId/dashboards", cfg.ProjectsHandler.ListDashboards)
			projects.GET("/:projectId/dashboards/:dashboardId", cfg.ProjectsHandler.GetDashboard)
			projects.GET("/:projectId/bootstrap", cfg.ProjectsHandler.Bootstrap)
			projects.POST("/:projectId/objects", cfg.ProjectsHandler.Objects)
		}

		protected.GET("/filters/elements", cfg.FiltersHandler.Elements)
		protected.POST("/reports/execute", cfg.ReportsHandler.Execute)
	}

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, cors middleware.CORSConfig) {
	// Apply global middleware
	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(middleware.NewCORSMiddleware(cors))

	// Setup routes
	Setup(r, cfg)
}
