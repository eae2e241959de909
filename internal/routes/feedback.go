package routes

import (
	"github.com/gin-gonic/gin"

	"hostel-mess/internal/handlers"
)

type FeedbackRoutes struct {
	handler *handlers.FeedbackHandler
}

func NewFeedbackRoutes(handler *handlers.FeedbackHandler) *FeedbackRoutes {
	return &FeedbackRoutes{handler: handler}
}

func (r *FeedbackRoutes) RegisterRoutes(router *gin.RouterGroup) {
	feedback := router.Group("/feedback")
	{
		feedback.GET("", r.handler.ListFeedback)
		feedback.POST("", r.handler.SubmitFeedback)
		feedback.DELETE("/:id", r.handler.DeleteFeedback)
		feedback.PUT("/:id/verify", r.handler.VerifyFeedback)
	}
}
