package messaging

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/repository"
	"github.com/xinyujieHong/CSEN174-Project/internal/validate"
)

// Service implements direct messaging: conversation listing, message
// history, sending, and the durable accept/deny gesture.
type Service struct {
	appCtx *app.AppContext
	convs  *repository.ConversationRepository
	msgs   *repository.MessageRepository
	dir    *repository.Directory
}

// NewService creates the messaging service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		convs:  repository.NewConversationRepository(appCtx.DB),
		msgs:   repository.NewMessageRepository(appCtx.DB),
		dir:    repository.NewDirectory(appCtx.DB),
	}
}

// ConversationView is one inbox row: the conversation plus the latest
// message and the other participant's display data.
type ConversationView struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	OtherUser PeerView    `json:"otherUser"`
	Last      *db.Message `json:"lastMessage"`
	Unread    int64       `json:"unread"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// PeerView is the display identity of the other participant.
type PeerView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Send delivers a message from senderID to receiverID, creating the
// conversation on first contact.
//
// The conversation id is a pure function of the pair, so no lookup is
// needed to address the thread from either side. Self-messaging is
// rejected by the CanSendMessage gate.
func (s *Service) Send(ctx context.Context, senderID, receiverID, content string) (*db.Message, error) {
	if !validate.CanSendMessage(senderID, receiverID) {
		return nil, svcErr.InvalidArgument("cannot message yourself")
	}

	content = validate.SanitizeMessageContent(content)
	if !validate.IsValidMessageContent(content) {
		return nil, svcErr.InvalidArgument("message content is required")
	}

	conv, err := s.convs.GetOrCreate(ctx, senderID, receiverID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	message := db.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.msgs.Create(ctx, &message); err != nil {
		return nil, svcErr.Map(err)
	}

	_, _ = s.appCtx.RedisCache.Incr(ctx, s.appCtx.RedisCache.KeyForUnread(receiverID, conv.ID))

	s.appCtx.Logger.Debug("message sent", "conversation", conv.ID, "sender", senderID)
	return &message, nil
}

// SendToConversation delivers into an existing conversation addressed
// by key. otherUserID is only needed on first contact, when the row
// does not exist yet.
func (s *Service) SendToConversation(ctx context.Context, senderID, conversationID, otherUserID, content string) (*db.Message, error) {
	conv, err := s.convs.GetByID(ctx, conversationID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.Map(err)
		}
		if otherUserID == "" {
			return nil, svcErr.InvalidArgument("otherUserId required for new conversation")
		}
		return s.Send(ctx, senderID, otherUserID, content)
	}

	if !conv.HasParticipant(senderID) {
		return nil, svcErr.Forbidden("not part of this conversation")
	}

	receiverID := conv.ParticipantA
	if receiverID == senderID {
		receiverID = conv.ParticipantB
	}
	return s.Send(ctx, senderID, receiverID, content)
}

// ListMessages returns a conversation's history in display order and
// clears the reader's unread counter for that conversation only.
func (s *Service) ListMessages(ctx context.Context, userID, conversationID string) ([]db.Message, error) {
	conv, err := s.convs.GetByID(ctx, conversationID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if !conv.HasParticipant(userID) {
		return nil, svcErr.Forbidden("not part of this conversation")
	}

	messages, err := s.msgs.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	_ = s.appCtx.RedisCache.ClearUnreadCount(ctx, userID, conversationID)
	return messages, nil
}

// ListConversations returns the user's inbox, newest activity first.
func (s *Service) ListConversations(ctx context.Context, userID string) ([]ConversationView, error) {
	convs, err := s.convs.ListForUser(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	views := make([]ConversationView, 0, len(convs))
	for _, conv := range convs {
		otherID := conv.ParticipantA
		if otherID == userID {
			otherID = conv.ParticipantB
		}

		unread, err := s.appCtx.RedisCache.GetUnreadCount(ctx, userID, conv.ID)
		if err != nil {
			unread = 0
		}

		view := ConversationView{
			ID:        conv.ID,
			Status:    conv.Status,
			Unread:    unread,
			CreatedAt: conv.CreatedAt,
			UpdatedAt: conv.UpdatedAt,
			OtherUser: s.peerView(ctx, otherID),
		}
		if last, err := s.msgs.Last(ctx, conv.ID); err == nil {
			view.Last = last
		}
		views = append(views, view)
	}

	sortByActivity(views)
	return views, nil
}

// SetStatus persists an accept/deny decision. The transition runs
// exactly once from pending; repeated gestures surface as a conflict.
func (s *Service) SetStatus(ctx context.Context, userID, conversationID, status string) error {
	if status != "accepted" && status != "denied" {
		return svcErr.InvalidArgument("status must be accepted or denied")
	}

	conv, err := s.convs.GetByID(ctx, conversationID)
	if err != nil {
		return svcErr.Map(err)
	}
	if !conv.HasParticipant(userID) {
		return svcErr.Forbidden("not part of this conversation")
	}

	if err := s.convs.UpdateStatus(ctx, conversationID, status); err != nil {
		if errors.Is(err, repository.ErrStatusFinal) {
			return svcErr.AlreadyExists("conversation status already decided")
		}
		return svcErr.Map(err)
	}

	s.appCtx.Logger.Info("conversation status updated", "conversation", conversationID, "status", status)
	return nil
}

func (s *Service) peerView(ctx context.Context, userID string) PeerView {
	view := PeerView{ID: userID, Name: "Unknown"}
	if profile, err := s.dir.GetProfile(ctx, userID); err == nil && profile != nil {
		if profile.Name != "" {
			view.Name = profile.Name
		}
		view.ProfilePicture = profile.ProfilePicture
	}
	if view.Name == "Unknown" {
		if user, err := s.dir.GetUser(ctx, userID); err == nil && user != nil && user.Name != "" {
			view.Name = user.Name
		}
	}
	return view
}

// sortByActivity orders inbox rows by last-message time (falling back
// to conversation creation), newest first.
func sortByActivity(views []ConversationView) {
	at := func(v ConversationView) time.Time {
		if v.Last != nil {
			return v.Last.CreatedAt
		}
		return v.CreatedAt
	}
	sort.SliceStable(views, func(i, j int) bool {
		return at(views[i]).After(at(views[j]))
	})
}
