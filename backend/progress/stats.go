package progress

import (
	"time"

	"educelo/backend/models"
)

// BuildStats composes study time, weekly goal progress and the day streak
// into the aggregated stats response. Pure composition over fetched data:
// totalMessages and weeklyMessages are user-message counts, daily is the
// per-day count map covering the streak lookback window.
func BuildStats(totalMessages, weeklyMessages int64, goalHours int, daily map[string]int64, today time.Time) models.Stats {
	weeklyMinutes := StudyMinutes(weeklyMessages)
	// процент считается от неокруглённых часов
	weeklyHours := float64(weeklyMinutes) / 60
	goal := GoalHoursOrDefault(goalHours)
	streak := CountStreak(daily, today)

	return models.Stats{
		StudyTime: ComputeStudyTime(totalMessages),
		WeeklyGoal: models.WeeklyGoal{
			CurrentHours:     RoundHours(weeklyMinutes),
			GoalHours:        goal,
			Percent:          GoalPercent(weeklyHours, goal),
			MessagesThisWeek: weeklyMessages,
		},
		DayStreak: models.DayStreak{
			Days:   streak,
			Status: StreakStatus(streak),
		},
	}
}
