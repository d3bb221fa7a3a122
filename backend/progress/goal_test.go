package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestValidGoalHours(t *testing.T) {
	assert.False(t, ValidGoalHours(0))
	assert.True(t, ValidGoalHours(1))
	assert.True(t, ValidGoalHours(10))
	assert.True(t, ValidGoalHours(16))
	assert.False(t, ValidGoalHours(17))
	assert.False(t, ValidGoalHours(-3))
}

func TestGoalHoursOrDefault(t *testing.T) {
	assert.Equal(t, 10, GoalHoursOrDefault(0))
	assert.Equal(t, 10, GoalHoursOrDefault(-1))
	assert.Equal(t, 5, GoalHoursOrDefault(5))
	assert.Equal(t, 16, GoalHoursOrDefault(16))
}

func TestGoalPercent(t *testing.T) {
	assert.Equal(t, 0, GoalPercent(0, 10))
	// 5 сообщений за неделю: 10 минут = 0.1667 часа при цели 10 часов
	assert.Equal(t, 1, GoalPercent(float64(10)/60, 10))
	assert.Equal(t, 50, GoalPercent(5, 10))
	assert.Equal(t, 100, GoalPercent(10, 10))
	assert.Equal(t, 100, GoalPercent(50, 1))
}

func TestGoalPercentBounds(t *testing.T) {
	for goal := MinGoalHours; goal <= MaxGoalHours; goal++ {
		for hours := 0.0; hours <= 40; hours += 0.25 {
			percent := GoalPercent(hours, goal)
			assert.GreaterOrEqual(t, percent, 0)
			assert.LessOrEqual(t, percent, 100)
		}
	}
}

func TestCooldownRemainingNeverUpdated(t *testing.T) {
	assert.Equal(t, 0, CooldownRemaining(nil, date(2025, time.March, 10)))
}

func TestCooldownRemaining(t *testing.T) {
	today := date(2025, time.March, 10)

	threeDaysAgo := today.AddDate(0, 0, -3)
	assert.Equal(t, 4, CooldownRemaining(&threeDaysAgo, today))

	sixDaysAgo := today.AddDate(0, 0, -6)
	assert.Equal(t, 1, CooldownRemaining(&sixDaysAgo, today))

	sevenDaysAgo := today.AddDate(0, 0, -7)
	assert.Equal(t, 0, CooldownRemaining(&sevenDaysAgo, today))

	tenDaysAgo := today.AddDate(0, 0, -10)
	assert.Equal(t, 0, CooldownRemaining(&tenDaysAgo, today))
}

func TestCooldownRemainingDecreases(t *testing.T) {
	updated := date(2025, time.March, 10)
	prev := GoalCooldownDays + 1
	for offset := 0; offset <= GoalCooldownDays; offset++ {
		today := updated.AddDate(0, 0, offset)
		remaining := CooldownRemaining(&updated, today)
		assert.Less(t, remaining, prev)
		prev = remaining
	}
	assert.Equal(t, 0, prev)
}

func TestCooldownCalendarDays(t *testing.T) {
	// Обновление поздно вечером: считаем календарные дни, не секунды
	updated := time.Date(2025, time.March, 3, 23, 59, 0, 0, time.UTC)
	today := date(2025, time.March, 10)
	assert.Equal(t, 0, CooldownRemaining(&updated, today))
}

func TestNextUpdateAvailable(t *testing.T) {
	today := date(2025, time.March, 10)
	assert.Equal(t, today, NextUpdateAvailable(nil, today))

	updated := date(2025, time.March, 7)
	assert.Equal(t, date(2025, time.March, 14), NextUpdateAvailable(&updated, today))
}

func TestGoalCooldownErrorMessage(t *testing.T) {
	err := &GoalCooldownError{DaysRemaining: 4}
	assert.Contains(t, err.Error(), "4 day")
}
