package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-mess/internal/middlewares"
	"hostel-mess/internal/responses"
)

// parseID reads a non-negative integer path parameter. Anything else is answered
// with 404, the same as an unmatched route.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		responses.Fail(c, http.StatusNotFound, fmt.Errorf("invalid %s: %q", name, raw))
		return 0, false
	}
	return id, true
}

// serverError logs a data-access failure and answers 500.
func serverError(c *gin.Context, op string, err error) {
	slog.ErrorContext(c.Request.Context(), op+" failed",
		"error", err,
		"request_id", middlewares.RequestID(c),
	)
	responses.Fail(c, http.StatusInternalServerError, err)
}

// badRequest answers 400 for bodies that are not JSON or lack a required field.
func badRequest(c *gin.Context, err error) {
	responses.Fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
}
