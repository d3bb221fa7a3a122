package progress

import (
	"fmt"
	"time"

	"educelo/backend/utils"
)

const (
	// DefaultGoalHours используется пока пользователь не выбрал цель.
	DefaultGoalHours = 10
	MinGoalHours     = 1
	MaxGoalHours     = 16
	// GoalCooldownDays — менять цель можно не чаще раза в неделю.
	GoalCooldownDays = 7
)

// GoalCooldownError means the goal was changed less than GoalCooldownDays
// calendar days ago. DaysRemaining is how long the caller still has to wait.
type GoalCooldownError struct {
	DaysRemaining int
}

func (e *GoalCooldownError) Error() string {
	return fmt.Sprintf("weekly goal was updated recently, next update available in %d day(s)", e.DaysRemaining)
}

// ValidGoalHours reports whether hours is inside the allowed goal range.
func ValidGoalHours(hours int) bool {
	return hours >= MinGoalHours && hours <= MaxGoalHours
}

// GoalHoursOrDefault substitutes the default goal when the stored value is unset.
func GoalHoursOrDefault(hours int) int {
	if hours <= 0 {
		return DefaultGoalHours
	}
	return hours
}

// CooldownRemaining returns how many calendar days are left before the goal
// may be updated again. Zero means an update is allowed. The subtraction is
// calendar-date based, not elapsed-seconds based.
func CooldownRemaining(lastUpdated *time.Time, today time.Time) int {
	if lastUpdated == nil {
		return 0
	}
	elapsed := utils.DaysBetween(*lastUpdated, today)
	if elapsed >= GoalCooldownDays {
		return 0
	}
	return GoalCooldownDays - elapsed
}

// NextUpdateAvailable returns the first date on which a goal update is allowed.
func NextUpdateAvailable(lastUpdated *time.Time, today time.Time) time.Time {
	if lastUpdated == nil {
		return utils.TruncateToDay(today)
	}
	return utils.TruncateToDay(*lastUpdated).AddDate(0, 0, GoalCooldownDays)
}

// GoalPercent computes percent-of-goal progress: floor of the ratio,
// capped at 100, never negative.
func GoalPercent(weeklyStudyHours float64, goalHours int) int {
	goal := GoalHoursOrDefault(goalHours)
	percent := int(weeklyStudyHours / float64(goal) * 100)
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}
