package repositories

import (
	"errors"
	"fmt"
	"time"

	"educelo/backend/models"
	"educelo/backend/progress"
	"educelo/backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

var _ ProfileStore = (*UserRepository)(nil)

func (r *UserRepository) GetGoalState(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.DB.Select("id", "weekly_goal_hours", "goal_last_updated").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not load goal state: %w", err)
	}
	return &user, nil
}

// UpdateGoal применяет цель одним условным UPDATE: строка меняется только
// если кулдаун уже прошёл. Так два конкурентных запроса не проскочат
// проверку одновременно — побеждает ровно один.
func (r *UserRepository) UpdateGoal(userID uuid.UUID, hours int, today time.Time) error {
	day := utils.TruncateToDay(today)
	cutoff := day.AddDate(0, 0, -progress.GoalCooldownDays)

	res := r.DB.Model(&models.User{}).
		Where("id = ? AND (goal_last_updated IS NULL OR goal_last_updated <= ?)", userID, utils.DayKey(cutoff)).
		Updates(map[string]interface{}{
			"weekly_goal_hours": hours,
			"goal_last_updated": day,
		})
	if res.Error != nil {
		return fmt.Errorf("could not update goal: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Ноль строк: либо пользователя нет, либо кулдаун ещё действует.
	user, err := r.GetGoalState(userID)
	if err != nil {
		return err
	}

	remaining := progress.CooldownRemaining(user.GoalLastUpdated, day)
	if remaining > 0 {
		return &progress.GoalCooldownError{DaysRemaining: remaining}
	}
	return fmt.Errorf("could not update goal for user %s", userID)
}
