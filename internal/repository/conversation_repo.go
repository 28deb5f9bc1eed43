package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/conversation"
	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// ErrStatusFinal is returned when a conversation's accept/deny status
// has already been decided.
var ErrStatusFinal = errors.New("conversation status already decided")

// ConversationRepository provides data access methods for the
// Conversation model. Conversation identity is a pure function of the
// participant pair (conversation.Key), so get-or-create by
// participants needs no search.
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new repository bound to the given DB connection.
func NewConversationRepository(database *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: database}
}

// GetByID fetches a conversation by its canonical key.
func (r *ConversationRepository) GetByID(ctx context.Context, conversationID string) (*db.Conversation, error) {
	var conv db.Conversation
	if err := r.db.WithContext(ctx).First(&conv, "id = ?", conversationID).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetOrCreate looks up the conversation for an unordered user pair,
// creating it in pending status on first contact. Both directions land
// on the same row because the key is commutative.
func (r *ConversationRepository) GetOrCreate(ctx context.Context, userA, userB string) (*db.Conversation, error) {
	key := conversation.Key(userA, userB)

	var conv db.Conversation
	err := r.db.WithContext(ctx).First(&conv, "id = ?", key).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a, b, _ := conversation.Split(key)
	conv = db.Conversation{
		ID:           key,
		ParticipantA: a,
		ParticipantB: b,
		Status:       "pending",
	}
	if err := r.db.WithContext(ctx).Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListForUser returns every conversation the user participates in.
func (r *ConversationRepository) ListForUser(ctx context.Context, userID string) ([]db.Conversation, error) {
	var convs []db.Conversation
	err := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Find(&convs).Error
	return convs, err
}

// UpdateStatus transitions a conversation out of pending exactly once.
// A second transition attempt returns ErrStatusFinal.
func (r *ConversationRepository) UpdateStatus(ctx context.Context, conversationID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&db.Conversation{}).
		Where("id = ? AND status = ?", conversationID, "pending").
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var conv db.Conversation
		if err := r.db.WithContext(ctx).First(&conv, "id = ?", conversationID).Error; err != nil {
			return err
		}
		return ErrStatusFinal
	}
	return nil
}
