package repositories

import (
	"errors"
	"time"

	"educelo/backend/models"

	"github.com/google/uuid"
)

var (
	// ErrMessageStoreUnavailable оборачивает любой сбой чтения сообщений;
	// наружу уходит как транзиентная ошибка, ретраев внутри нет.
	ErrMessageStoreUnavailable = errors.New("message store unavailable")
	ErrUserNotFound            = errors.New("user not found")
)

// MessageStore читает лог сообщений, которым владеет чат-сервис.
// Аналитика видит его строго read-only.
type MessageStore interface {
	// CountUserMessages returns how many user-authored messages the user
	// has ever sent.
	CountUserMessages(userID uuid.UUID) (int64, error)
	// CountUserMessagesSince counts user-authored messages on or after the
	// given calendar date.
	CountUserMessagesSince(userID uuid.UUID, since time.Time) (int64, error)
	// DailyUserMessageCounts returns per-day user-message counts for the
	// closed date range [from, to], keyed by utils.DayKey. Days without
	// messages are absent from the map.
	DailyUserMessageCounts(userID uuid.UUID, from, to time.Time) (map[string]int64, error)
}

// ProfileStore мутирует состояние цели в профиле пользователя.
type ProfileStore interface {
	GetGoalState(userID uuid.UUID) (*models.User, error)
	// UpdateGoal sets the weekly goal atomically. Returns
	// *progress.GoalCooldownError when the 7-day cooldown is still active.
	UpdateGoal(userID uuid.UUID, hours int, today time.Time) error
}
