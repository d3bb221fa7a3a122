package progress

import (
	"testing"
	"time"

	"educelo/backend/utils"

	"github.com/stretchr/testify/assert"
)

func dailyCounts(today time.Time, counts ...int64) map[string]int64 {
	daily := make(map[string]int64, len(counts))
	for i, count := range counts {
		daily[utils.DayKey(today.AddDate(0, 0, -i))] = count
	}
	return daily
}

func TestCountStreakBreaksOnFirstMiss(t *testing.T) {
	today := date(2025, time.March, 10)
	// today: 3, вчера: 3, позавчера: 2 → стрик 2
	daily := dailyCounts(today, 3, 3, 2)
	assert.Equal(t, 2, CountStreak(daily, today))
}

func TestCountStreakZeroWhenTodayQuiet(t *testing.T) {
	today := date(2025, time.March, 10)

	// Год непрерывной активности, но сегодня тишина — стрик сгорает
	daily := make(map[string]int64)
	for i := 1; i <= StreakLookbackDays; i++ {
		daily[utils.DayKey(today.AddDate(0, 0, -i))] = 10
	}
	assert.Equal(t, 0, CountStreak(daily, today))
}

func TestCountStreakEmpty(t *testing.T) {
	today := date(2025, time.March, 10)
	assert.Equal(t, 0, CountStreak(map[string]int64{}, today))
}

func TestCountStreakThresholdBoundary(t *testing.T) {
	today := date(2025, time.March, 10)

	assert.Equal(t, 1, CountStreak(dailyCounts(today, 3), today))
	assert.Equal(t, 0, CountStreak(dailyCounts(today, 2), today))
}

func TestCountStreakExactRun(t *testing.T) {
	today := date(2025, time.March, 10)

	for run := 1; run <= 30; run++ {
		counts := make([]int64, run+1)
		for i := 0; i < run; i++ {
			counts[i] = StreakThreshold
		}
		counts[run] = StreakThreshold - 1
		assert.Equal(t, run, CountStreak(dailyCounts(today, counts...), today))
	}
}

func TestCountStreakStopsAtLookback(t *testing.T) {
	today := date(2025, time.March, 10)

	// Активность глубже окна не учитывается
	daily := make(map[string]int64)
	for i := 0; i <= StreakLookbackDays+50; i++ {
		daily[utils.DayKey(today.AddDate(0, 0, -i))] = 5
	}
	assert.Equal(t, StreakLookbackDays+1, CountStreak(daily, today))
}

func TestStreakStatus(t *testing.T) {
	assert.Equal(t, "Start your streak today!", StreakStatus(0))
	assert.Equal(t, "Keep it going!", StreakStatus(1))
	assert.Equal(t, "Keep it going!", StreakStatus(365))
}
