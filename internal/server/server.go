package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostel-mess/internal/config"
	"hostel-mess/internal/database"
	"hostel-mess/internal/handlers"
	"hostel-mess/internal/middlewares"
	"hostel-mess/internal/repositories"
	"hostel-mess/internal/routes"
	"hostel-mess/internal/services"
)

// NewServer wires repositories, services and handlers over the pool and
// returns a configured but not yet listening *http.Server.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *http.Server {
	// Dependency injection
	menuRepo := repositories.NewMenuRepository(pool)
	noticeRepo := repositories.NewNoticeRepository(pool)
	feedbackRepo := repositories.NewFeedbackRepository(pool)
	statsRepo := repositories.NewStatsRepository(pool)

	h := routes.Handlers{
		Menu:     handlers.NewMenuHandler(services.NewMenuService(menuRepo)),
		Notice:   handlers.NewNoticeHandler(services.NewNoticeService(noticeRepo)),
		Feedback: handlers.NewFeedbackHandler(services.NewFeedbackService(feedbackRepo)),
		Stats:    handlers.NewStatsHandler(services.NewStatsService(statsRepo)),
		Health:   handlers.NewHealthHandler(database.HealthChecker{Pool: pool}, cfg.FrontendIndex),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(cfg, logger, h),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg *config.Config, logger *slog.Logger, h routes.Handlers) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middlewares.AssignRequestID,
		middlewares.RequestLogger(logger),
		middlewares.RecordMetrics,
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	routes.RegisterRoutes(router, h)
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middlewares.RequestIDHeader)
	c.ExposeHeaders = []string{middlewares.RequestIDHeader}
	c.MaxAge = 12 * time.Hour

	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
