package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostel-mess/internal/database"
	"hostel-mess/internal/models"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

const menuRowsSelect = `
	SELECT m.id, m.day_of_week, m.meal_type, m.time_slot, mi.item_name
	FROM meals m
	LEFT JOIN menu_items mi ON mi.meal_id = m.id
`

// FetchRows returns one row per (meal, item) pair, plus one row with a nil
// item for every meal without items. A nil day returns every day. Rows come
// back grouped by meal id with items in insertion order.
func (r *MenuRepository) FetchRows(ctx context.Context, day *string) ([]models.MenuRow, error) {
	var out []models.MenuRow

	err := database.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		var (
			rows pgx.Rows
			err  error
		)
		if day != nil {
			rows, err = conn.Query(ctx, menuRowsSelect+`
	WHERE m.day_of_week = $1
	ORDER BY m.id, mi.id`, *day)
		} else {
			rows, err = conn.Query(ctx, menuRowsSelect+`
	ORDER BY m.id, mi.id`)
		}
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row models.MenuRow
			if err := rows.Scan(
				&row.MealID,
				&row.DayOfWeek,
				&row.MealType,
				&row.TimeSlot,
				&row.ItemName,
			); err != nil {
				return err
			}
			out = append(out, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *MenuRepository) ListMeals(ctx context.Context) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)

	err := database.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, day_of_week, meal_type, time_slot
			FROM meals
			ORDER BY id
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var meal models.Meal
			if err := rows.Scan(&meal.ID, &meal.DayOfWeek, &meal.MealType, &meal.TimeSlot); err != nil {
				return err
			}
			meals = append(meals, meal)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return meals, nil
}

// ReplaceItems swaps the whole item list of a meal in one transaction. The
// new items keep the order of names.
func (r *MenuRepository) ReplaceItems(ctx context.Context, mealID int64, names []string) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return r.ReplaceItemsTx(ctx, tx, mealID, names)
	})
}

// ReplaceItemsTx is ReplaceItems for a caller-owned transaction.
func (r *MenuRepository) ReplaceItemsTx(ctx context.Context, tx pgx.Tx, mealID int64, names []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE meal_id = $1`, mealID); err != nil {
		return err
	}

	for _, name := range names {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menu_items (meal_id, item_name)
			VALUES ($1, $2)
		`, mealID, name); err != nil {
			return err
		}
	}

	return nil
}

// UpsertMealTx returns the id of the meal for (day, type), creating it when
// absent and refreshing its time slot otherwise.
func (r *MenuRepository) UpsertMealTx(ctx context.Context, tx pgx.Tx, meal *models.Meal) error {
	err := tx.QueryRow(ctx, `
		UPDATE meals SET time_slot = $3
		WHERE id = (
			SELECT id FROM meals
			WHERE day_of_week = $1 AND meal_type = $2
			ORDER BY id
			LIMIT 1
		)
		RETURNING id
	`, meal.DayOfWeek, meal.MealType, meal.TimeSlot).Scan(&meal.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO meals (day_of_week, meal_type, time_slot)
		VALUES ($1, $2, $3)
		RETURNING id
	`, meal.DayOfWeek, meal.MealType, meal.TimeSlot).Scan(&meal.ID)
}

// ClearMealsTx deletes every meal. Items go with them through the cascade.
func (r *MenuRepository) ClearMealsTx(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `DELETE FROM meals`)
	return err
}
