package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostel-mess/internal/database"
	"hostel-mess/internal/models"
)

type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

func (r *FeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	feedbacks := make([]models.Feedback, 0)

	err := database.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, student_name, meal, rating, comment,
			       date_posted, verified
			FROM feedback
			ORDER BY date_posted DESC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				fb     models.Feedback
				posted time.Time
			)
			err := rows.Scan(
				&fb.ID,
				&fb.StudentName,
				&fb.Meal,
				&fb.Rating,
				&fb.Comment,
				&posted,
				&fb.Verified,
			)
			if err != nil {
				return err
			}
			fb.DatePosted = models.Date{Time: posted}
			feedbacks = append(feedbacks, fb)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// Create inserts the entry as given, including Verified, and sets its ID.
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO feedback (student_name, meal, rating, comment, date_posted, verified)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
			fb.StudentName,
			fb.Meal,
			fb.Rating,
			fb.Comment,
			fb.DatePosted.Time,
			fb.Verified,
		).Scan(&fb.ID)
	})
}

// Delete removes the entry. A missing id is not an error.
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
		return err
	})
}

// Verify sets verified = true. There is no way back to false.
func (r *FeedbackRepository) Verify(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `UPDATE feedback SET verified = TRUE WHERE id = $1`, id)
		return err
	})
}
