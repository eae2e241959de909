package services

import (
	"context"

	"hostel-mess/internal/apperrors"
	"hostel-mess/internal/metrics"
	"hostel-mess/internal/models"
)

type MenuStore interface {
	FetchRows(ctx context.Context, day *string) ([]models.MenuRow, error)
	ListMeals(ctx context.Context) ([]models.Meal, error)
	ReplaceItems(ctx context.Context, mealID int64, names []string) error
}

type MenuService struct {
	menuRepo MenuStore
}

func NewMenuService(menuRepo MenuStore) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

type UpdateMenuRequest struct {
	MealID int64    `json:"meal_id" binding:"required"`
	Items  []string `json:"items"`
}

// GetDayMenu returns the meals of one day keyed by meal type. The day is
// matched exactly against stored values; an unknown day yields an empty menu.
func (s *MenuService) GetDayMenu(ctx context.Context, day string) (*models.DayMenu, error) {
	rows, err := s.menuRepo.FetchRows(ctx, &day)
	if err != nil {
		return nil, apperrors.Wrap("fetch day menu", err)
	}
	return BuildDayMenu(rows), nil
}

// GetWeekMenu returns every day's meals, Monday first.
func (s *MenuService) GetWeekMenu(ctx context.Context) (*models.WeekMenu, error) {
	rows, err := s.menuRepo.FetchRows(ctx, nil)
	if err != nil {
		return nil, apperrors.Wrap("fetch week menu", err)
	}
	return BuildWeekMenu(rows), nil
}

// UpdateMenu replaces the items of a meal. Either every item is written or
// the previous list stays untouched.
func (s *MenuService) UpdateMenu(ctx context.Context, req UpdateMenuRequest) error {
	if err := s.menuRepo.ReplaceItems(ctx, req.MealID, req.Items); err != nil {
		metrics.MenuUpdates.WithLabelValues(metrics.OutcomeFailure).Inc()
		return apperrors.Wrap("update menu", err)
	}
	metrics.MenuUpdates.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return nil
}

func (s *MenuService) ListMeals(ctx context.Context) ([]models.Meal, error) {
	meals, err := s.menuRepo.ListMeals(ctx)
	if err != nil {
		return nil, apperrors.Wrap("list meals", err)
	}
	sortMeals(meals)
	return meals, nil
}

// mealGroup collects the items of one meal in row order.
type mealGroup struct {
	meal  models.Meal
	items []string
}

func groupRows(rows []models.MenuRow) []*mealGroup {
	var (
		groups []*mealGroup
		byID   = make(map[int64]*mealGroup)
	)
	for _, row := range rows {
		g, ok := byID[row.MealID]
		if !ok {
			g = &mealGroup{
				meal: models.Meal{
					ID:        row.MealID,
					DayOfWeek: row.DayOfWeek,
					MealType:  row.MealType,
					TimeSlot:  row.TimeSlot,
				},
				items: []string{},
			}
			byID[row.MealID] = g
			groups = append(groups, g)
		}
		if row.ItemName != nil {
			g.items = append(g.items, *row.ItemName)
		}
	}
	return groups
}

// BuildDayMenu shapes joined rows into meal_type -> {id, items, time}. Two
// meals sharing a type collapse into one key, the later meal winning.
func BuildDayMenu(rows []models.MenuRow) *models.DayMenu {
	menu := models.NewOrderedMap[models.DayMeal]()
	for _, g := range groupRows(rows) {
		menu.Set(g.meal.MealType, models.DayMeal{
			ID:    g.meal.ID,
			Items: g.items,
			Time:  g.meal.TimeSlot,
		})
	}
	menu.SortKeys(models.MealTypeRank)
	return menu
}

// BuildWeekMenu shapes joined rows into day -> meal_type -> {items, time}.
func BuildWeekMenu(rows []models.MenuRow) *models.WeekMenu {
	week := models.NewOrderedMap[*models.DayMeals]()
	for _, g := range groupRows(rows) {
		day, ok := week.Get(g.meal.DayOfWeek)
		if !ok {
			day = models.NewOrderedMap[models.WeekMeal]()
			week.Set(g.meal.DayOfWeek, day)
		}
		day.Set(g.meal.MealType, models.WeekMeal{
			Items: g.items,
			Time:  g.meal.TimeSlot,
		})
	}

	week.SortKeys(models.DayRank)
	for _, key := range week.Keys() {
		day, _ := week.Get(key)
		day.SortKeys(models.MealTypeRank)
	}
	return week
}
