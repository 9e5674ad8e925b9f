package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backend/models"
)

func momentOnDay(daysAgo int) models.Moment {
	ts := dayStart(time.Now()).AddDate(0, 0, -daysAgo).Add(9 * time.Hour)
	return models.Moment{Timestamp: ts}
}

func TestCalculateCurrentStreak_Empty(t *testing.T) {
	svc := NewStreakService()
	assert.Equal(t, 0, svc.CalculateCurrentStreak(nil))
}

func TestCalculateCurrentStreak_ConsecutiveDays(t *testing.T) {
	svc := NewStreakService()
	moments := []models.Moment{momentOnDay(0), momentOnDay(1), momentOnDay(2)}

	assert.Equal(t, 3, svc.CalculateCurrentStreak(moments))
}

func TestCalculateCurrentStreak_TodayMayBeEmpty(t *testing.T) {
	svc := NewStreakService()
	moments := []models.Moment{momentOnDay(1), momentOnDay(2), momentOnDay(3)}

	assert.Equal(t, 3, svc.CalculateCurrentStreak(moments))
}

func TestCalculateCurrentStreak_GapBreaksStreak(t *testing.T) {
	svc := NewStreakService()
	moments := []models.Moment{momentOnDay(0), momentOnDay(1), momentOnDay(3), momentOnDay(4)}

	assert.Equal(t, 2, svc.CalculateCurrentStreak(moments))
}

func TestCalculateCurrentStreak_StaleHistoryIsZero(t *testing.T) {
	svc := NewStreakService()
	moments := []models.Moment{momentOnDay(2), momentOnDay(3)}

	assert.Equal(t, 0, svc.CalculateCurrentStreak(moments))
}

func TestCalculateCurrentStreak_MultipleLogsSameDayCountOnce(t *testing.T) {
	svc := NewStreakService()
	moments := []models.Moment{momentOnDay(0), momentOnDay(0), momentOnDay(1)}

	assert.Equal(t, 2, svc.CalculateCurrentStreak(moments))
}

func TestCalculateLongestStreak(t *testing.T) {
	svc := NewStreakService()

	assert.Equal(t, 0, svc.CalculateLongestStreak(nil))

	// Runs of 2 (days 0-1) and 4 (days 5-8): longest is 4.
	moments := []models.Moment{
		momentOnDay(0), momentOnDay(1),
		momentOnDay(5), momentOnDay(6), momentOnDay(7), momentOnDay(8),
	}
	assert.Equal(t, 4, svc.CalculateLongestStreak(moments))
}

func TestGetStreakEmoji(t *testing.T) {
	svc := NewStreakService()

	assert.Equal(t, "💪", svc.GetStreakEmoji(0))
	assert.Equal(t, "💪", svc.GetStreakEmoji(2))
	assert.Equal(t, "✨", svc.GetStreakEmoji(3))
	assert.Equal(t, "⭐", svc.GetStreakEmoji(7))
	assert.Equal(t, "🔥", svc.GetStreakEmoji(14))
	assert.Equal(t, "🏆", svc.GetStreakEmoji(30))
}

func TestGetStreakMessage_TiersMatchEmojiBoundaries(t *testing.T) {
	svc := NewStreakService()

	// A streak of 2 sits in the starter tier with 1, not with 3.
	assert.Equal(t, svc.GetStreakMessage(1), svc.GetStreakMessage(2))
	assert.NotEqual(t, svc.GetStreakMessage(2), "2 days strong! Keep the momentum going.")
	assert.Equal(t, "3 days strong! Keep the momentum going.", svc.GetStreakMessage(3))

	assert.Contains(t, svc.GetStreakMessage(7), "week")
	assert.Contains(t, svc.GetStreakMessage(14), "fire")
	assert.Contains(t, svc.GetStreakMessage(30), "champion")
	assert.Contains(t, svc.GetStreakMessage(0), "Start logging")
}

func TestGetStreakResult(t *testing.T) {
	svc := NewStreakService()
	moments := []models.Moment{momentOnDay(0), momentOnDay(1), momentOnDay(2)}

	result := svc.GetStreakResult(moments)

	assert.Equal(t, 3, result.Current)
	assert.Equal(t, 3, result.Longest)
	assert.Equal(t, "✨", result.Emoji)
	assert.Contains(t, result.Message, "3 days")
}
