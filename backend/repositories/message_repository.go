package repositories

import (
	"fmt"
	"time"

	"educelo/backend/models"
	"educelo/backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

var _ MessageStore = (*MessageRepository)(nil)

func (r *MessageRepository) CountUserMessages(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Message{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.user_id = ? AND messages.role = ?", userID, models.RoleUser).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMessageStoreUnavailable, err)
	}
	return count, nil
}

func (r *MessageRepository) CountUserMessagesSince(userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Message{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.user_id = ? AND messages.role = ?", userID, models.RoleUser).
		Where("DATE(messages.created_at) >= ?", utils.DayKey(since)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMessageStoreUnavailable, err)
	}
	return count, nil
}

func (r *MessageRepository) DailyUserMessageCounts(userID uuid.UUID, from, to time.Time) (map[string]int64, error) {
	var rows []struct {
		Day   time.Time
		Count int64
	}

	// Группировка по календарному дню делается на стороне базы, чтобы не
	// тянуть сырые сообщения за год.
	err := r.DB.Raw(`
		SELECT DATE(messages.created_at) AS day, COUNT(*) AS count
		FROM messages
		JOIN conversations ON conversations.id = messages.conversation_id
		WHERE conversations.user_id = ?
		  AND messages.role = ?
		  AND DATE(messages.created_at) BETWEEN ? AND ?
		GROUP BY DATE(messages.created_at)
	`, userID, models.RoleUser, utils.DayKey(from), utils.DayKey(to)).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMessageStoreUnavailable, err)
	}

	daily := make(map[string]int64, len(rows))
	for _, row := range rows {
		daily[utils.DayKey(row.Day)] = row.Count
	}
	return daily, nil
}
