// Package seed loads a weekly menu from YAML and writes it to the database.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"hostel-mess/internal/database"
	"hostel-mess/internal/models"
	"hostel-mess/internal/repositories"
)

//go:embed default_menu.yaml
var defaultMenu []byte

type Menu struct {
	Days []Day `yaml:"days"`
}

type Day struct {
	Name  string     `yaml:"day"`
	Meals []MealSpec `yaml:"meals"`
}

type MealSpec struct {
	Type  string   `yaml:"type"`
	Time  string   `yaml:"time"`
	Items []string `yaml:"items"`
}

// Result counts what Apply wrote.
type Result struct {
	Meals int
	Items int
}

// Parse decodes and checks a menu document. Unknown keys are rejected so
// typos do not silently drop data.
func Parse(data []byte) (*Menu, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var menu Menu
	if err := dec.Decode(&menu); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	if err := menu.validate(); err != nil {
		return nil, err
	}
	return &menu, nil
}

// LoadFile parses the menu at path.
func LoadFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in menu covering every day and meal type.
func Default() (*Menu, error) {
	return Parse(defaultMenu)
}

func (m *Menu) validate() error {
	if len(m.Days) == 0 {
		return errors.New("menu has no days")
	}

	seen := make(map[string]bool)
	for i, day := range m.Days {
		if strings.TrimSpace(day.Name) == "" {
			return fmt.Errorf("day %d: name is required", i+1)
		}
		for j, meal := range day.Meals {
			if strings.TrimSpace(meal.Type) == "" {
				return fmt.Errorf("%s meal %d: type is required", day.Name, j+1)
			}
			key := day.Name + "/" + meal.Type
			if seen[key] {
				return fmt.Errorf("%s %s is listed twice", day.Name, meal.Type)
			}
			seen[key] = true
		}
	}
	return nil
}

type Seeder struct {
	pool     *pgxpool.Pool
	menuRepo *repositories.MenuRepository
}

func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{
		pool:     pool,
		menuRepo: repositories.NewMenuRepository(pool),
	}
}

// Apply writes the menu in a single transaction. Existing meals are matched by
// day and meal type and their items replaced; with replace set every meal is
// removed first.
func (s *Seeder) Apply(ctx context.Context, menu *Menu, replace bool) (Result, error) {
	var res Result

	err := database.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		if replace {
			if err := s.menuRepo.ClearMealsTx(ctx, tx); err != nil {
				return fmt.Errorf("failed to clear meals: %w", err)
			}
		}

		for _, day := range menu.Days {
			for _, spec := range day.Meals {
				meal := models.Meal{
					DayOfWeek: day.Name,
					MealType:  spec.Type,
					TimeSlot:  spec.Time,
				}
				if err := s.menuRepo.UpsertMealTx(ctx, tx, &meal); err != nil {
					return fmt.Errorf("failed to save %s %s: %w", day.Name, spec.Type, err)
				}
				if err := s.menuRepo.ReplaceItemsTx(ctx, tx, meal.ID, spec.Items); err != nil {
					return fmt.Errorf("failed to save items of %s %s: %w", day.Name, spec.Type, err)
				}
				res.Meals++
				res.Items += len(spec.Items)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	slog.Info("menu seeded", "meals", res.Meals, "items", res.Items, "replace", replace)
	return res, nil
}
