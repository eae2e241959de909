package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-mess/internal/models"
	"hostel-mess/internal/responses"
	"hostel-mess/internal/services"
)

type FeedbackService interface {
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	SubmitFeedback(ctx context.Context, req services.SubmitFeedbackRequest) (int64, error)
	DeleteFeedback(ctx context.Context, id int64) error
	VerifyFeedback(ctx context.Context, id int64) error
}

type FeedbackHandler struct {
	feedbackService FeedbackService
}

func NewFeedbackHandler(feedbackService FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// ListFeedback handles GET /api/feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	feedbacks, err := h.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		serverError(c, "list feedback", err)
		return
	}

	responses.Data(c, http.StatusOK, feedbacks)
}

// SubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req services.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := h.feedbackService.SubmitFeedback(c.Request.Context(), req)
	if err != nil {
		serverError(c, "submit feedback", err)
		return
	}

	responses.Created(c, http.StatusOK, id, "Feedback submitted successfully")
}

// DeleteFeedback handles DELETE /api/feedback/:id
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), id); err != nil {
		serverError(c, "delete feedback", err)
		return
	}

	responses.Message(c, http.StatusOK, "Feedback deleted successfully")
}

// VerifyFeedback handles PUT /api/feedback/:id/verify
func (h *FeedbackHandler) VerifyFeedback(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.feedbackService.VerifyFeedback(c.Request.Context(), id); err != nil {
		serverError(c, "verify feedback", err)
		return
	}

	responses.Message(c, http.StatusOK, "Feedback verified successfully")
}
