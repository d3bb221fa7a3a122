package progress

import (
	"time"

	"educelo/backend/models"
	"educelo/backend/utils"
)

// HeatmapDays — 52 недели календарной сетки активности.
const HeatmapDays = 364

// ActivityLevel classifies a daily message count into a heatmap bucket.
func ActivityLevel(count int64) string {
	switch {
	case count == 0:
		return "none"
	case count < 5:
		return "low"
	case count < 10:
		return "medium"
	default:
		return "high"
	}
}

// BuildHeatmap produces one entry per calendar day over the trailing
// HeatmapDays window ending today, in ascending date order. Days without
// activity are filled with zero, so the grid is always contiguous.
func BuildHeatmap(daily map[string]int64, today time.Time) models.ActivityHeatmap {
	end := utils.TruncateToDay(today)
	start := end.AddDate(0, 0, -(HeatmapDays - 1))

	activity := make([]models.ActivityDay, 0, HeatmapDays)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		count := daily[utils.DayKey(day)]
		activity = append(activity, models.ActivityDay{
			Date:  utils.DayKey(day),
			Count: count,
			Level: ActivityLevel(count),
		})
	}

	return models.ActivityHeatmap{
		Activity:  activity,
		TotalDays: len(activity),
	}
}
