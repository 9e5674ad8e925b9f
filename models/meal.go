package models

import (
	"strings"
	"time"
)

// Meal types.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// One logged meal. Foods are raw comma-separated names exactly as the
// user typed them; NormalizedFoods holds the canonicalized version when
// a normalization pass has run, and is preferred for trigger matching.
type Meal struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`

	MealType string `gorm:"size:20" json:"meal_type"` // breakfast|lunch|dinner|snack
	Name     string `json:"name"`

	Foods           string `gorm:"type:text" json:"foods"`
	NormalizedFoods string `gorm:"type:text" json:"normalized_foods,omitempty"`
	FoodTags        string `gorm:"type:text" json:"food_tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func splitFoods(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// FoodList returns the raw food names.
func (m *Meal) FoodList() []string { return splitFoods(m.Foods) }

// NormalizedFoodList returns the canonicalized food names, if any.
func (m *Meal) NormalizedFoodList() []string { return splitFoods(m.NormalizedFoods) }

// FoodsForAnalysis prefers normalized foods and falls back to the raw list.
func (m *Meal) FoodsForAnalysis() []string {
	if n := m.NormalizedFoodList(); len(n) > 0 {
		return n
	}
	return m.FoodList()
}

