package services

import (
	"context"

	"hostel-mess/internal/models"
)

type fakeMenuStore struct {
	rows     []models.MenuRow
	meals    []models.Meal
	err      error
	gotDay   *string
	replaced map[int64][]string
}

func (f *fakeMenuStore) FetchRows(_ context.Context, day *string) ([]models.MenuRow, error) {
	f.gotDay = day
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeMenuStore) ListMeals(context.Context) ([]models.Meal, error) {
	return f.meals, f.err
}

func (f *fakeMenuStore) ReplaceItems(_ context.Context, mealID int64, names []string) error {
	if f.err != nil {
		return f.err
	}
	if f.replaced == nil {
		f.replaced = make(map[int64][]string)
	}
	f.replaced[mealID] = names
	return nil
}

type fakeNoticeStore struct {
	notices []models.Notice
	created []models.Notice
	deleted []int64
	nextID  int64
	err     error
}

func (f *fakeNoticeStore) List(context.Context) ([]models.Notice, error) {
	return f.notices, f.err
}

func (f *fakeNoticeStore) Create(_ context.Context, n *models.Notice) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	n.ID = f.nextID
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNoticeStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeFeedbackStore struct {
	created  []models.Feedback
	deleted  []int64
	verified []int64
	nextID   int64
	err      error
}

func (f *fakeFeedbackStore) List(context.Context) ([]models.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeFeedbackStore) Create(_ context.Context, fb *models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	fb.ID = f.nextID
	f.created = append(f.created, *fb)
	return nil
}

func (f *fakeFeedbackStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeFeedbackStore) Verify(_ context.Context, id int64) error {
	f.verified = append(f.verified, id)
	return f.err
}

type fakeStatsStore struct {
	stats *models.Stats
	err   error
}

func (f *fakeStatsStore) Collect(context.Context) (*models.Stats, error) {
	return f.stats, f.err
}

func strPtr(s string) *string { return &s }
