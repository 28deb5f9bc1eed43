// Package messaging contains the client-side message stream logic:
// the optimistic send merge and the direct-message helpers.
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// tempIDPrefix marks locally synthesized records awaiting server
// confirmation.
const tempIDPrefix = "temp-"

// Transport is the collaborator boundary for a thread: it sends one
// message and refreshes the authoritative list. Calls may fail; the
// thread absorbs failures itself.
type Transport interface {
	SendMessage(ctx context.Context, conversationID, content string) (db.Message, error)
	ListMessages(ctx context.Context, conversationID string) ([]db.Message, error)
}

// Thread keeps the displayed message list consistent while a locally
// composed message is in flight.
//
// Per send the state machine is composing -> optimistic -> confirmed
// or composing -> optimistic -> failed. An optimistic record (temp id,
// local timestamp) shows immediately; confirmation swaps it in place
// for the server record and then refreshes the whole list to pick up
// interleaved messages; failure removes it and restores the draft so
// the user can retry. Failures are logged here, never propagated.
type Thread struct {
	conversationID string
	senderID       string
	api            Transport
	log            *slog.Logger
	now            func() time.Time

	mu       sync.Mutex
	draft    string
	messages []db.Message
}

// NewThread creates a thread view over one conversation.
func NewThread(conversationID, senderID string, api Transport, log *slog.Logger) *Thread {
	return &Thread{
		conversationID: conversationID,
		senderID:       senderID,
		api:            api,
		log:            log,
		now:            time.Now,
	}
}

// SetDraft replaces the compose field contents.
func (t *Thread) SetDraft(content string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.draft = content
}

// Draft returns the current compose field contents.
func (t *Thread) Draft() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.draft
}

// Messages returns a copy of the displayed list.
func (t *Thread) Messages() []db.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]db.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Replace swaps in an authoritative list from a poll tick. Last write
// wins; the store is the source of truth.
func (t *Thread) Replace(messages []db.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = messages
}

// Send pushes the current draft through the optimistic state machine.
// An empty (or whitespace-only) draft is a no-op.
func (t *Thread) Send(ctx context.Context) {
	t.mu.Lock()
	content := strings.TrimSpace(t.draft)
	if content == "" {
		t.mu.Unlock()
		return
	}

	sentAt := t.now()
	tempID := fmt.Sprintf("%s%d", tempIDPrefix, sentAt.UnixMilli())
	t.messages = append(t.messages, db.Message{
		ID:             tempID,
		ConversationID: t.conversationID,
		SenderID:       t.senderID,
		Content:        content,
		CreatedAt:      sentAt,
	})
	t.draft = ""
	t.mu.Unlock()

	sent, err := t.api.SendMessage(ctx, t.conversationID, content)
	if err != nil {
		t.log.Warn("failed to send message", "conversation", t.conversationID, "err", err)
		t.mu.Lock()
		t.messages = removeByID(t.messages, tempID)
		t.draft = content
		t.mu.Unlock()
		return
	}

	t.mu.Lock()
	for i := range t.messages {
		if t.messages[i].ID == tempID {
			t.messages[i] = sent
			break
		}
	}
	t.mu.Unlock()

	// Full refresh to reconcile any interleaved messages from the
	// other participant. A failed refresh is harmless; the next poll
	// tick replaces the list anyway.
	if refreshed, err := t.api.ListMessages(ctx, t.conversationID); err == nil {
		t.Replace(refreshed)
	} else {
		t.log.Debug("post-send refresh failed", "conversation", t.conversationID, "err", err)
	}
}

func removeByID(messages []db.Message, id string) []db.Message {
	out := messages[:0]
	for _, m := range messages {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
