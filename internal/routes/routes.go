package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hostel-mess/internal/handlers"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Menu     *handlers.MenuHandler
	Notice   *handlers.NoticeHandler
	Feedback *handlers.FeedbackHandler
	Stats    *handlers.StatsHandler
	Health   *handlers.HealthHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")

	NewMenuRoutes(h.Menu).RegisterRoutes(api)
	NewNoticeRoutes(h.Notice).RegisterRoutes(api)
	NewFeedbackRoutes(h.Feedback).RegisterRoutes(api)
	api.GET("/stats", h.Stats.GetStats)

	router.GET("/", h.Health.Root)
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
