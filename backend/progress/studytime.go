// Package progress computes the derived study metrics: time-on-task,
// weekly goal progress, day streak and the activity heatmap. All functions
// are pure and work over already-fetched data, so they are testable without
// a database.
package progress

import (
	"math"

	"educelo/backend/models"
)

// MinutesPerMessage — оценка времени учёбы: одно сообщение пользователя
// считается за две минуты занятий.
const MinutesPerMessage = 2

// StudyMinutes converts a user-message count into estimated study minutes.
func StudyMinutes(messageCount int64) int64 {
	return messageCount * MinutesPerMessage
}

// RoundHours converts minutes to hours rounded to one decimal for display.
// Internal math keeps the unrounded value.
func RoundHours(minutes int64) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

// ComputeStudyTime builds the total study-time section of the stats response.
func ComputeStudyTime(totalMessages int64) models.StudyTime {
	minutes := StudyMinutes(totalMessages)
	return models.StudyTime{
		Hours:   RoundHours(minutes),
		Minutes: minutes,
		Change:  "This week",
	}
}
