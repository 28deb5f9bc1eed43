package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// MessageRepository provides data access methods for the Message
// model. Messages are append-only and immutable once created.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// Create appends one message to its conversation.
func (r *MessageRepository) Create(ctx context.Context, message *db.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByConversation returns a conversation's messages ordered by
// created_at ascending, the display order.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]db.Message, error) {
	var messages []db.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// Last returns the most recent message of a conversation, or nil when
// the conversation has none yet.
func (r *MessageRepository) Last(ctx context.Context, conversationID string) (*db.Message, error) {
	var message db.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}
