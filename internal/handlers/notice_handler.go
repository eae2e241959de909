package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-mess/internal/models"
	"hostel-mess/internal/responses"
	"hostel-mess/internal/services"
)

type NoticeService interface {
	ListNotices(ctx context.Context) ([]models.Notice, error)
	CreateNotice(ctx context.Context, req services.CreateNoticeRequest) (int64, error)
	DeleteNotice(ctx context.Context, id int64) error
}

type NoticeHandler struct {
	noticeService NoticeService
}

func NewNoticeHandler(noticeService NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// ListNotices handles GET /api/notices
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	notices, err := h.noticeService.ListNotices(c.Request.Context())
	if err != nil {
		serverError(c, "list notices", err)
		return
	}

	responses.Data(c, http.StatusOK, notices)
}

// CreateNotice handles POST /api/notices
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req services.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := h.noticeService.CreateNotice(c.Request.Context(), req)
	if err != nil {
		serverError(c, "create notice", err)
		return
	}

	responses.Created(c, http.StatusOK, id, "Notice added successfully")
}

// DeleteNotice handles DELETE /api/notices/:id
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.noticeService.DeleteNotice(c.Request.Context(), id); err != nil {
		serverError(c, "delete notice", err)
		return
	}

	responses.Message(c, http.StatusOK, "Notice deleted successfully")
}
