package controllers

import (
	"errors"

	"educelo/backend/config"
	"educelo/backend/models"
	"educelo/backend/progress"
	"educelo/backend/repositories"
	"educelo/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Messages repositories.MessageStore
	Profiles repositories.ProfileStore
	Cfg      *config.Config
}

func NewProgressController(messages repositories.MessageStore, profiles repositories.ProfileStore, cfg *config.Config) *ProgressController {
	return &ProgressController{Messages: messages, Profiles: profiles, Cfg: cfg}
}

type UpdateGoalRequest struct {
	WeeklyGoalHours int `json:"weekly_goal_hours" example:"10" minimum:"1" maximum:"16"`
}

// GetStats godoc
// @Summary Get study statistics
// @Description Returns study time, weekly goal progress and day streak
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/stats [get]
func (pc *ProgressController) GetStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user, err := pc.Profiles.GetGoalState(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to load user profile")
	}

	today := utils.Today()

	total, err := pc.Messages.CountUserMessages(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch message activity")
	}

	weekly, err := pc.Messages.CountUserMessagesSince(userID, utils.StartOfWeek(today))
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch message activity")
	}

	daily, err := pc.Messages.DailyUserMessageCounts(
		userID,
		today.AddDate(0, 0, -progress.StreakLookbackDays),
		today,
	)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch message activity")
	}

	return c.JSON(progress.BuildStats(total, weekly, user.WeeklyGoalHours, daily, today))
}

// GetActivity godoc
// @Summary Get activity heatmap
// @Description Returns per-day activity levels for the trailing 52 weeks
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.ActivityHeatmap
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/activity [get]
func (pc *ProgressController) GetActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	today := utils.Today()
	daily, err := pc.Messages.DailyUserMessageCounts(
		userID,
		today.AddDate(0, 0, -(progress.HeatmapDays-1)),
		today,
	)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch message activity")
	}

	return c.JSON(progress.BuildHeatmap(daily, today))
}

// GetGoal godoc
// @Summary Get weekly goal state
// @Description Returns the configured weekly goal and when it may be changed next
// @Tags goal
// @Accept json
// @Produce json
// @Success 200 {object} models.GoalState
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/goal [get]
func (pc *ProgressController) GetGoal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user, err := pc.Profiles.GetGoalState(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to load user profile")
	}

	today := utils.Today()
	state := models.GoalState{
		WeeklyGoalHours:     progress.GoalHoursOrDefault(user.WeeklyGoalHours),
		NextUpdateAvailable: utils.DayKey(progress.NextUpdateAvailable(user.GoalLastUpdated, today)),
	}
	if user.GoalLastUpdated != nil {
		lastUpdated := utils.DayKey(*user.GoalLastUpdated)
		state.GoalLastUpdated = &lastUpdated
	}

	return c.JSON(state)
}

// UpdateGoal godoc
// @Summary Update weekly goal
// @Description Sets a new weekly goal; allowed at most once per 7 days
// @Tags goal
// @Accept json
// @Produce json
// @Param request body UpdateGoalRequest true "New weekly goal in hours"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/goal [put]
func (pc *ProgressController) UpdateGoal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateGoalRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if !progress.ValidGoalHours(input.WeeklyGoalHours) {
		return utils.BadRequest(c, "Weekly goal must be between 1 and 16 hours")
	}

	today := utils.Today()
	if err := pc.Profiles.UpdateGoal(userID, input.WeeklyGoalHours, today); err != nil {
		var cooldown *progress.GoalCooldownError
		if errors.As(err, &cooldown) {
			return utils.Error(c, fiber.StatusTooManyRequests, cooldown, fiber.Map{
				"days_remaining": cooldown.DaysRemaining,
			})
		}
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to update goal")
	}

	return c.JSON(fiber.Map{
		"message":               "Weekly goal updated successfully",
		"weekly_goal_hours":     input.WeeklyGoalHours,
		"next_update_available": utils.DayKey(today.AddDate(0, 0, progress.GoalCooldownDays)),
	})
}
