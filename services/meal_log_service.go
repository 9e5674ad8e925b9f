package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"backend/config"
	"backend/models"
)

type MealInput struct {
	Timestamp time.Time `json:"timestamp"`
	MealType  string    `json:"meal_type"`
	Name      string    `json:"name"`
	Foods     []string  `json:"foods"`
	FoodTags  []string  `json:"food_tags"`
}

func LogMeal(userID uint, input MealInput) (*models.Meal, error) {
	switch input.MealType {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
	default:
		return nil, errors.New("unknown meal type")
	}
	if len(input.Foods) == 0 {
		return nil, errors.New("at least one food is required")
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	var normalized []string
	for _, f := range input.Foods {
		if n := models.NormalizeFoodName(f); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return nil, errors.New("at least one food is required")
	}

	meal := models.Meal{
		ID:              uuid.NewString(),
		UserID:          userID,
		Timestamp:       ts,
		MealType:        input.MealType,
		Name:            input.Name,
		Foods:           strings.Join(input.Foods, ","),
		NormalizedFoods: strings.Join(normalized, ","),
		FoodTags:        strings.Join(input.FoodTags, ","),
	}

	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func GetMeals(userID uint, sinceDays int) ([]models.Meal, error) {
	var meals []models.Meal
	q := config.DB.Where("user_id = ?", userID)
	if sinceDays > 0 {
		q = q.Where("timestamp >= ?", time.Now().AddDate(0, 0, -sinceDays))
	}
	err := q.Order("timestamp desc").Find(&meals).Error
	return meals, err
}

func DeleteMeal(userID uint, mealID string) error {
	result := config.DB.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("meal not found")
	}
	return nil
}
