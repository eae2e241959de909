package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db            Pinger
	frontendIndex string
}

// NewHealthHandler serves the liveness probes and the site root. When
// frontendIndex is empty the root answers with a plain status object.
func NewHealthHandler(db Pinger, frontendIndex string) *HealthHandler {
	return &HealthHandler{db: db, frontendIndex: frontendIndex}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	if h.frontendIndex != "" {
		c.File(h.frontendIndex)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
