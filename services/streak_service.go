package services

import (
	"fmt"
	"sort"
	"time"

	"backend/models"
)

type StreakResult struct {
	Current int    `json:"current"`
	Longest int    `json:"longest"`
	Emoji   string `json:"emoji"`
	Message string `json:"message"`
}

// StreakService computes logging streaks over local calendar days. A
// streak is consecutive days with at least one moment; today not being
// logged yet does not break the current streak.
type StreakService struct{}

func NewStreakService() *StreakService { return &StreakService{} }

// Sanity ceiling on the walk-back so a corrupt history can't loop
// for years.
const maxStreakDays = 365

// CalculateCurrentStreak walks backwards from today counting
// consecutive logged days. An empty today is tolerated; the streak
// then starts at yesterday.
func (s *StreakService) CalculateCurrentStreak(moments []models.Moment) int {
	if len(moments) == 0 {
		return 0
	}

	logged := loggedDays(moments)
	today := dayStart(time.Now())

	day := today
	if !logged[day] {
		day = day.AddDate(0, 0, -1)
		if !logged[day] {
			return 0
		}
	}

	streak := 0
	for logged[day] && streak < maxStreakDays {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CalculateLongestStreak scans the full history for the longest run of
// consecutive logged days.
func (s *StreakService) CalculateLongestStreak(moments []models.Moment) int {
	logged := loggedDays(moments)
	if len(logged) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(logged))
	for d := range logged {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func (s *StreakService) GetStreakEmoji(streak int) string {
	switch {
	case streak >= 30:
		return "🏆"
	case streak >= 14:
		return "🔥"
	case streak >= 7:
		return "⭐"
	case streak >= 3:
		return "✨"
	default:
		return "💪"
	}
}

// GetStreakMessage tiers at the same boundaries as the emoji table.
func (s *StreakService) GetStreakMessage(streak int) string {
	switch {
	case streak == 0:
		return "Start logging to build your streak!"
	case streak < 3:
		return "Great start! Log again tomorrow to keep it going."
	case streak < 7:
		return fmt.Sprintf("%d days strong! Keep the momentum going.", streak)
	case streak < 14:
		return fmt.Sprintf("A full week and counting: %d days!", streak)
	case streak < 30:
		return fmt.Sprintf("%d days straight. You're on fire!", streak)
	default:
		return fmt.Sprintf("%d days! You're a tracking champion!", streak)
	}
}

func (s *StreakService) GetStreakResult(moments []models.Moment) StreakResult {
	current := s.CalculateCurrentStreak(moments)
	return StreakResult{
		Current: current,
		Longest: s.CalculateLongestStreak(moments),
		Emoji:   s.GetStreakEmoji(current),
		Message: s.GetStreakMessage(current),
	}
}

func loggedDays(moments []models.Moment) map[time.Time]bool {
	days := make(map[time.Time]bool, len(moments))
	for _, m := range moments {
		days[dayStart(m.Timestamp)] = true
	}
	return days
}

func dayStart(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}
