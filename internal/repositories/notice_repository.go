package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostel-mess/internal/database"
	"hostel-mess/internal/models"
)

type NoticeRepository struct {
	pool *pgxpool.Pool
}

func NewNoticeRepository(pool *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{pool: pool}
}

// List returns notices newest first. Notices posted on the same day come back
// in storage order.
func (r *NoticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	notices := make([]models.Notice, 0)

	err := database.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, title, message, date_posted
			FROM notices
			ORDER BY date_posted DESC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				notice models.Notice
				posted time.Time
			)
			if err := rows.Scan(&notice.ID, &notice.Title, &notice.Message, &posted); err != nil {
				return err
			}
			notice.DatePosted = models.Date{Time: posted}
			notices = append(notices, notice)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return notices, nil
}

// Create inserts the notice and sets its ID.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO notices (title, message, date_posted)
			VALUES ($1, $2, $3)
			RETURNING id
		`, notice.Title, notice.Message, notice.DatePosted.Time).Scan(&notice.ID)
	})
}

// Delete removes the notice. A missing id is not an error.
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
		return err
	})
}
