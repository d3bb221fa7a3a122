package models

import (
	"time"

	"github.com/google/uuid"
)

// User хранится и управляется сервисом аутентификации; здесь нам нужны
// только колонки цели. PasswordHash никогда не читается этим сервисом.
type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username        string     `gorm:"size:50;unique;not null" json:"username"`
	Email           string     `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash    string     `gorm:"size:255;not null" json:"-"`
	IsActive        bool       `gorm:"default:true;not null" json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	WeeklyGoalHours int        `gorm:"default:10" json:"weekly_goal_hours"`
	GoalLastUpdated *time.Time `gorm:"type:date" json:"goal_last_updated"`
}
