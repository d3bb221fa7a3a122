package progress

import (
	"time"

	"educelo/backend/utils"
)

const (
	// StreakThreshold — минимум сообщений в день, чтобы день засчитался.
	StreakThreshold = 3
	// StreakLookbackDays ограничивает глубину проверки стрика.
	StreakLookbackDays = 365
)

// CountStreak walks backward from today over a map of per-day user-message
// counts (keyed by utils.DayKey) and counts consecutive qualifying days.
// The first day below the threshold stops the walk — including today itself,
// so a quiet today always means a streak of zero. No grace period.
func CountStreak(daily map[string]int64, today time.Time) int {
	day := utils.TruncateToDay(today)
	oldest := day.AddDate(0, 0, -StreakLookbackDays)

	streak := 0
	for !day.Before(oldest) {
		if daily[utils.DayKey(day)] < StreakThreshold {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// StreakStatus returns the encouragement line shown next to the streak.
func StreakStatus(days int) string {
	if days > 0 {
		return "Keep it going!"
	}
	return "Start your streak today!"
}
