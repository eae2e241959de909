package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostel-mess/internal/database"
	"hostel-mess/internal/models"
)

const popularMealsLimit = 5

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Collect runs the four feedback aggregates in a single batch on one
// connection. AverageRating is returned unrounded.
func (r *StatsRepository) Collect(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{
		RatingDistribution: make([]models.RatingBucket, 0),
		PopularMeals:       make([]models.PopularMeal, 0),
	}

	err := database.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		batch := &pgx.Batch{}
		batch.Queue(`SELECT COALESCE(AVG(rating), 0)::float8 FROM feedback`)
		batch.Queue(`SELECT COUNT(*) FROM feedback`)
		batch.Queue(`
			SELECT rating, COUNT(*) AS count
			FROM feedback
			GROUP BY rating
			ORDER BY rating DESC
		`)
		batch.Queue(`
			SELECT meal, COUNT(*) AS feedback_count
			FROM feedback
			GROUP BY meal
			ORDER BY feedback_count DESC, meal ASC
			LIMIT $1
		`, popularMealsLimit)

		br := conn.SendBatch(ctx, batch)
		defer br.Close()

		if err := br.QueryRow().Scan(&stats.AverageRating); err != nil {
			return err
		}
		if err := br.QueryRow().Scan(&stats.TotalFeedback); err != nil {
			return err
		}

		rows, err := br.Query()
		if err != nil {
			return err
		}
		buckets, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.RatingBucket])
		if err != nil {
			return err
		}
		stats.RatingDistribution = append(stats.RatingDistribution, buckets...)

		rows, err = br.Query()
		if err != nil {
			return err
		}
		popular, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.PopularMeal])
		if err != nil {
			return err
		}
		stats.PopularMeals = append(stats.PopularMeals, popular...)

		return br.Close()
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
