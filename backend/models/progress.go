package models

// Ответы аналитики: считаются заново на каждый запрос, нигде не хранятся.

type StudyTime struct {
	Hours   float64 `json:"hours"`
	Minutes int64   `json:"minutes"`
	Change  string  `json:"change"`
}

type WeeklyGoal struct {
	CurrentHours     float64 `json:"current_hours"`
	GoalHours        int     `json:"goal_hours"`
	Percent          int     `json:"percent"`
	MessagesThisWeek int64   `json:"messages_this_week"`
}

type DayStreak struct {
	Days   int    `json:"days"`
	Status string `json:"status"`
}

type Stats struct {
	StudyTime  StudyTime  `json:"study_time"`
	WeeklyGoal WeeklyGoal `json:"weekly_goal"`
	DayStreak  DayStreak  `json:"day_streak"`
}

type ActivityDay struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
	Level string `json:"level"`
}

type ActivityHeatmap struct {
	Activity  []ActivityDay `json:"activity"`
	TotalDays int           `json:"total_days"`
}

type GoalState struct {
	WeeklyGoalHours     int     `json:"weekly_goal_hours"`
	GoalLastUpdated     *string `json:"goal_last_updated"`
	NextUpdateAvailable string  `json:"next_update_available"`
}
