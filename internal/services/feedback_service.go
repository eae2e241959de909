package services

import (
	"context"
	"strconv"
	"time"

	"hostel-mess/internal/apperrors"
	"hostel-mess/internal/metrics"
	"hostel-mess/internal/models"
)

type FeedbackStore interface {
	List(ctx context.Context) ([]models.Feedback, error)
	Create(ctx context.Context, fb *models.Feedback) error
	Delete(ctx context.Context, id int64) error
	Verify(ctx context.Context, id int64) error
}

type FeedbackService struct {
	feedbackRepo FeedbackStore
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo FeedbackStore) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		now:          time.Now,
	}
}

type SubmitFeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Meal    string `json:"meal" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap("list feedback", err)
	}
	return feedbacks, nil
}

// SubmitFeedback stores a new unverified entry dated today and returns its id.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, req SubmitFeedbackRequest) (int64, error) {
	fb := &models.Feedback{
		StudentName: req.Name,
		Meal:        req.Meal,
		Rating:      req.Rating,
		Comment:     req.Comment,
		DatePosted:  models.Today(s.now()),
		Verified:    false,
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return 0, apperrors.Wrap("submit feedback", err)
	}

	metrics.FeedbackSubmitted.WithLabelValues(strconv.Itoa(fb.Rating)).Inc()
	return fb.ID, nil
}

// DeleteFeedback succeeds whether or not the entry existed.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	return apperrors.Wrap("delete feedback", s.feedbackRepo.Delete(ctx, id))
}

// VerifyFeedback marks the entry as moderated. Repeating it, or naming a
// missing id, is a no-op.
func (s *FeedbackService) VerifyFeedback(ctx context.Context, id int64) error {
	return apperrors.Wrap("verify feedback", s.feedbackRepo.Verify(ctx, id))
}
