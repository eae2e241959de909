package routes

import (
	"github.com/gin-gonic/gin"

	"hostel-mess/internal/handlers"
)

type NoticeRoutes struct {
	handler *handlers.NoticeHandler
}

func NewNoticeRoutes(handler *handlers.NoticeHandler) *NoticeRoutes {
	return &NoticeRoutes{handler: handler}
}

func (r *NoticeRoutes) RegisterRoutes(router *gin.RouterGroup) {
	notices := router.Group("/notices")
	{
		notices.GET("", r.handler.ListNotices)
		notices.POST("", r.handler.CreateNotice)
		notices.DELETE("/:id", r.handler.DeleteNotice)
	}
}
