package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-mess/internal/models"
	"hostel-mess/internal/repositories"
	"hostel-mess/internal/testutil"
)

func itemNames(rows []models.MenuRow) []string {
	var out []string
	for _, r := range rows {
		if r.ItemName != nil {
			out = append(out, *r.ItemName)
		}
	}
	return out
}

func date(y int, m time.Month, d int) models.Date {
	return models.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestRepositories(t *testing.T) {
	pool, _ := testutil.Postgres(t)
	ctx := context.Background()

	menus := repositories.NewMenuRepository(pool)
	notices := repositories.NewNoticeRepository(pool)
	feedback := repositories.NewFeedbackRepository(pool)
	stats := repositories.NewStatsRepository(pool)

	t.Run("FetchRows filters by day and keeps empty meals", func(t *testing.T) {
		testutil.Reset(t, pool)
		breakfast := testutil.InsertMeal(t, pool, "Monday", "Breakfast", "7:30 - 9:00", "Poha", "Tea")
		testutil.InsertMeal(t, pool, "Monday", "Snacks", "17:00 - 18:00")
		testutil.InsertMeal(t, pool, "Tuesday", "Lunch", "12:30 - 14:00", "Rice")

		day := "Monday"
		rows, err := menus.FetchRows(ctx, &day)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, breakfast, rows[0].MealID)
		assert.Equal(t, []string{"Poha", "Tea"}, itemNames(rows))
		assert.Equal(t, "Snacks", rows[2].MealType)
		assert.Nil(t, rows[2].ItemName)

		all, err := menus.FetchRows(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("FetchRows day match is case sensitive", func(t *testing.T) {
		testutil.Reset(t, pool)
		testutil.InsertMeal(t, pool, "Monday", "Lunch", "12:30", "Dal")

		day := "monday"
		rows, err := menus.FetchRows(ctx, &day)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("ReplaceItems swaps the list in order", func(t *testing.T) {
		testutil.Reset(t, pool)
		id := testutil.InsertMeal(t, pool, "Friday", "Dinner", "20:00", "Old 1", "Old 2")

		require.NoError(t, menus.ReplaceItems(ctx, id, []string{"Paneer", "Roti", "Kheer"}))

		day := "Friday"
		rows, err := menus.FetchRows(ctx, &day)
		require.NoError(t, err)
		assert.Equal(t, []string{"Paneer", "Roti", "Kheer"}, itemNames(rows))
	})

	t.Run("ReplaceItems with empty list clears the meal", func(t *testing.T) {
		testutil.Reset(t, pool)
		id := testutil.InsertMeal(t, pool, "Friday", "Dinner", "20:00", "Old")

		require.NoError(t, menus.ReplaceItems(ctx, id, nil))

		day := "Friday"
		rows, err := menus.FetchRows(ctx, &day)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].ItemName)
	})

	t.Run("ReplaceItems rolls back on a failed insert", func(t *testing.T) {
		testutil.Reset(t, pool)
		id := testutil.InsertMeal(t, pool, "Sunday", "Lunch", "13:00", "Biryani", "Raita")

		// PostgreSQL rejects NUL bytes in text values.
		err := menus.ReplaceItems(ctx, id, []string{"Pulao", "bad\x00item", "Salad"})
		require.Error(t, err)

		day := "Sunday"
		rows, err := menus.FetchRows(ctx, &day)
		require.NoError(t, err)
		assert.Equal(t, []string{"Biryani", "Raita"}, itemNames(rows))
	})

	t.Run("ReplaceItems on an unknown meal", func(t *testing.T) {
		testutil.Reset(t, pool)

		assert.NoError(t, menus.ReplaceItems(ctx, 999, nil))
		assert.Error(t, menus.ReplaceItems(ctx, 999, []string{"Ghost"}))
	})

	t.Run("ListMeals", func(t *testing.T) {
		testutil.Reset(t, pool)
		testutil.InsertMeal(t, pool, "Monday", "Dinner", "20:00")
		testutil.InsertMeal(t, pool, "Monday", "Breakfast", "08:00")

		meals, err := menus.ListMeals(ctx)
		require.NoError(t, err)
		require.Len(t, meals, 2)
		assert.Equal(t, "Dinner", meals[0].MealType)
	})

	t.Run("notices list newest first", func(t *testing.T) {
		testutil.Reset(t, pool)

		older := &models.Notice{Title: "Water", Message: "No water 2-4pm", DatePosted: date(2025, 1, 5)}
		newer := &models.Notice{Title: "Holiday", Message: "Mess closed", DatePosted: date(2025, 2, 1)}
		require.NoError(t, notices.Create(ctx, older))
		require.NoError(t, notices.Create(ctx, newer))
		assert.NotZero(t, older.ID)
		assert.Greater(t, newer.ID, older.ID)

		list, err := notices.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Holiday", list[0].Title)
		assert.Equal(t, "2025-02-01", list[0].DatePosted.String())
	})

	t.Run("notices delete is permissive", func(t *testing.T) {
		testutil.Reset(t, pool)
		n := &models.Notice{Title: "t", Message: "m", DatePosted: date(2025, 1, 1)}
		require.NoError(t, notices.Create(ctx, n))

		require.NoError(t, notices.Delete(ctx, n.ID))
		require.NoError(t, notices.Delete(ctx, n.ID))
		require.NoError(t, notices.Delete(ctx, 424242))

		list, err := notices.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
	})

	t.Run("feedback verify is one-way and idempotent", func(t *testing.T) {
		testutil.Reset(t, pool)
		fb := &models.Feedback{StudentName: "A", Meal: "Lunch", Rating: 4, Comment: "ok", DatePosted: date(2025, 3, 3)}
		require.NoError(t, feedback.Create(ctx, fb))

		list, err := feedback.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.False(t, list[0].Verified)

		require.NoError(t, feedback.Verify(ctx, fb.ID))
		require.NoError(t, feedback.Verify(ctx, fb.ID))
		require.NoError(t, feedback.Verify(ctx, 999))

		list, err = feedback.List(ctx)
		require.NoError(t, err)
		assert.True(t, list[0].Verified)

		require.NoError(t, feedback.Delete(ctx, fb.ID))
		require.NoError(t, feedback.Delete(ctx, fb.ID))
	})

	t.Run("stats on empty table", func(t *testing.T) {
		testutil.Reset(t, pool)

		s, err := stats.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0.0, s.AverageRating)
		assert.Zero(t, s.TotalFeedback)
		assert.NotNil(t, s.RatingDistribution)
		assert.Empty(t, s.RatingDistribution)
		assert.NotNil(t, s.PopularMeals)
		assert.Empty(t, s.PopularMeals)
	})

	t.Run("stats aggregates", func(t *testing.T) {
		testutil.Reset(t, pool)

		entries := []struct {
			meal   string
			rating int
		}{
			{"Lunch", 5}, {"Lunch", 4}, {"Lunch", 5},
			{"Dinner", 3}, {"Dinner", 1},
			{"Breakfast", 4},
			{"Snacks", 2},
			{"Monday Lunch", 5},
			{"Sunday Dinner", 4},
		}
		for _, e := range entries {
			fb := &models.Feedback{StudentName: "s", Meal: e.meal, Rating: e.rating, DatePosted: date(2025, 4, 1)}
			require.NoError(t, feedback.Create(ctx, fb))
		}

		s, err := stats.Collect(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(9), s.TotalFeedback)
		assert.InDelta(t, 33.0/9.0, s.AverageRating, 1e-9)

		var sum int64
		for i, b := range s.RatingDistribution {
			sum += b.Count
			if i > 0 {
				assert.Less(t, b.Rating, s.RatingDistribution[i-1].Rating)
			}
		}
		assert.Equal(t, s.TotalFeedback, sum)
		assert.Equal(t, models.RatingBucket{Rating: 5, Count: 3}, s.RatingDistribution[0])

		require.Len(t, s.PopularMeals, 5)
		assert.Equal(t, models.PopularMeal{Meal: "Lunch", FeedbackCount: 3}, s.PopularMeals[0])
		assert.Equal(t, models.PopularMeal{Meal: "Dinner", FeedbackCount: 2}, s.PopularMeals[1])
		for i := 1; i < len(s.PopularMeals); i++ {
			assert.LessOrEqual(t, s.PopularMeals[i].FeedbackCount, s.PopularMeals[i-1].FeedbackCount)
		}
	})
}
