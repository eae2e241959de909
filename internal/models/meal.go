package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Canonical orderings used by every menu view.
var (
	DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	MealTypes  = []string{"Breakfast", "Lunch", "Snacks", "Dinner"}
)

type Meal struct {
	ID        int64  `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	MealType  string `json:"meal_type"`
	TimeSlot  string `json:"time_slot"`
}

type MenuItem struct {
	ID       int64  `json:"id"`
	MealID   int64  `json:"meal_id"`
	ItemName string `json:"item_name"`
}

// MenuRow is one row of meals LEFT JOIN menu_items. ItemName is nil when the
// meal has no items.
type MenuRow struct {
	MealID    int64
	DayOfWeek string
	MealType  string
	TimeSlot  string
	ItemName  *string
}

// DayMeal is a meal slot in the single-day view.
type DayMeal struct {
	ID    int64    `json:"id"`
	Items []string `json:"items"`
	Time  string   `json:"time"`
}

// WeekMeal is a meal slot in the week view, where ids are omitted.
type WeekMeal struct {
	Items []string `json:"items"`
	Time  string   `json:"time"`
}

// DayMenu maps meal_type to its slot, keeping Breakfast, Lunch, Snacks, Dinner order.
type DayMenu = OrderedMap[DayMeal]

// DayMeals maps meal_type to its slot inside the week view.
type DayMeals = OrderedMap[WeekMeal]

// WeekMenu maps day_of_week to that day's meals, Monday first.
type WeekMenu = OrderedMap[*DayMeals]

// DayRank orders day names Monday..Sunday. Unknown names rank after Sunday.
func DayRank(day string) int {
	return rank(DaysOfWeek, day)
}

// MealTypeRank orders meal types Breakfast..Dinner. Unknown types rank last.
func MealTypeRank(mealType string) int {
	return rank(MealTypes, mealType)
}

func rank(order []string, v string) int {
	for i, s := range order {
		if s == v {
			return i
		}
	}
	return len(order)
}

// OrderedMap is a string-keyed map that marshals to a JSON object with keys
// in insertion order. Setting an existing key replaces the value in place.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// SortKeys reorders keys by rank, then alphabetically among equal ranks.
func (m *OrderedMap[V]) SortKeys(rankOf func(string) int) {
	sort.SliceStable(m.keys, func(i, j int) bool {
		ri, rj := rankOf(m.keys[i]), rankOf(m.keys[j])
		if ri != rj {
			return ri < rj
		}
		return m.keys[i] < m.keys[j]
	})
}

func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
