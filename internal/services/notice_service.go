package services

import (
	"context"
	"time"

	"hostel-mess/internal/apperrors"
	"hostel-mess/internal/models"
)

type NoticeStore interface {
	List(ctx context.Context) ([]models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id int64) error
}

type NoticeService struct {
	noticeRepo NoticeStore
	now        func() time.Time
}

func NewNoticeService(noticeRepo NoticeStore) *NoticeService {
	return &NoticeService{
		noticeRepo: noticeRepo,
		now:        time.Now,
	}
}

type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *NoticeService) ListNotices(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap("list notices", err)
	}
	return notices, nil
}

// CreateNotice stores the notice dated today and returns its new id.
func (s *NoticeService) CreateNotice(ctx context.Context, req CreateNoticeRequest) (int64, error) {
	notice := &models.Notice{
		Title:      req.Title,
		Message:    req.Message,
		DatePosted: models.Today(s.now()),
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return 0, apperrors.Wrap("create notice", err)
	}
	return notice.ID, nil
}

// DeleteNotice succeeds whether or not the notice existed.
func (s *NoticeService) DeleteNotice(ctx context.Context, id int64) error {
	return apperrors.Wrap("delete notice", s.noticeRepo.Delete(ctx, id))
}
