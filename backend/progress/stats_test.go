package progress

import (
	"testing"
	"time"

	"educelo/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildStatsEmptyUser(t *testing.T) {
	today := date(2025, time.March, 10)
	stats := BuildStats(0, 0, 0, map[string]int64{}, today)

	assert.Equal(t, models.Stats{
		StudyTime: models.StudyTime{
			Hours:   0,
			Minutes: 0,
			Change:  "This week",
		},
		WeeklyGoal: models.WeeklyGoal{
			CurrentHours:     0,
			GoalHours:        10,
			Percent:          0,
			MessagesThisWeek: 0,
		},
		DayStreak: models.DayStreak{
			Days:   0,
			Status: "Start your streak today!",
		},
	}, stats)
}

func TestBuildStatsFiveMessagesToday(t *testing.T) {
	today := date(2025, time.March, 10)
	daily := dailyCounts(today, 5)

	stats := BuildStats(5, 5, 10, daily, today)

	assert.Equal(t, int64(10), stats.StudyTime.Minutes)
	assert.Equal(t, 0.2, stats.StudyTime.Hours)
	assert.Equal(t, 0.2, stats.WeeklyGoal.CurrentHours)
	assert.Equal(t, 10, stats.WeeklyGoal.GoalHours)
	// floor(10/60/10*100) = 1
	assert.Equal(t, 1, stats.WeeklyGoal.Percent)
	assert.Equal(t, int64(5), stats.WeeklyGoal.MessagesThisWeek)
	assert.Equal(t, 1, stats.DayStreak.Days)
	assert.Equal(t, "Keep it going!", stats.DayStreak.Status)
}

func TestBuildStatsUsesDefaultGoal(t *testing.T) {
	today := date(2025, time.March, 10)
	stats := BuildStats(300, 300, 0, map[string]int64{}, today)

	// 300 сообщений = 10 часов, цель по умолчанию 10 → ровно 100%
	assert.Equal(t, 10, stats.WeeklyGoal.GoalHours)
	assert.Equal(t, 100, stats.WeeklyGoal.Percent)
	assert.Equal(t, 10.0, stats.WeeklyGoal.CurrentHours)
}

func TestBuildStatsPercentCapped(t *testing.T) {
	today := date(2025, time.March, 10)
	stats := BuildStats(10000, 10000, 1, map[string]int64{}, today)

	assert.Equal(t, 100, stats.WeeklyGoal.Percent)
}

func TestBuildStatsStreakSection(t *testing.T) {
	today := date(2025, time.March, 10)
	daily := dailyCounts(today, 4, 3, 6, 1)

	stats := BuildStats(14, 14, 10, daily, today)

	assert.Equal(t, 3, stats.DayStreak.Days)
	assert.Equal(t, "Keep it going!", stats.DayStreak.Status)
}
