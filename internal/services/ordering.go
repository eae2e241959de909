package services

import (
	"sort"

	"hostel-mess/internal/models"
)

// sortMeals orders meals by day, then meal type, then id.
func sortMeals(meals []models.Meal) {
	sort.SliceStable(meals, func(i, j int) bool {
		a, b := meals[i], meals[j]
		if da, db := models.DayRank(a.DayOfWeek), models.DayRank(b.DayOfWeek); da != db {
			return da < db
		}
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		if ta, tb := models.MealTypeRank(a.MealType), models.MealTypeRank(b.MealType); ta != tb {
			return ta < tb
		}
		if a.MealType != b.MealType {
			return a.MealType < b.MealType
		}
		return a.ID < b.ID
	})
}
