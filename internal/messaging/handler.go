package messaging

import (
	"sort"
	"time"
)

// DirectMessage is the request-gesture view of a message used by the
// inbox: who sent it to whom and where it sits in the accept/deny
// lifecycle.
type DirectMessage struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	Timestamp  time.Time
	Status     string // pending, accepted, denied, read
}

// FilterByStatus returns the messages in the given status, preserving
// order.
func FilterByStatus(messages []DirectMessage, status string) []DirectMessage {
	var out []DirectMessage
	for _, m := range messages {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

// PendingFor returns the pending requests addressed to userID.
func PendingFor(messages []DirectMessage, userID string) []DirectMessage {
	if userID == "" {
		return nil
	}
	var out []DirectMessage
	for _, m := range messages {
		if m.ReceiverID == userID && m.Status == "pending" {
			out = append(out, m)
		}
	}
	return out
}

// SortByTimestamp returns a copy sorted newest first. The input is not
// modified.
func SortByTimestamp(messages []DirectMessage) []DirectMessage {
	out := make([]DirectMessage, len(messages))
	copy(out, messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// GroupByPeer buckets messages by the other participant from
// currentUserID's point of view, preserving per-peer order.
func GroupByPeer(messages []DirectMessage, currentUserID string) map[string][]DirectMessage {
	groups := make(map[string][]DirectMessage)
	if currentUserID == "" {
		return groups
	}
	for _, m := range messages {
		peer := m.SenderID
		if m.SenderID == currentUserID {
			peer = m.ReceiverID
		}
		groups[peer] = append(groups[peer], m)
	}
	return groups
}

// CountUnread counts pending messages addressed to userID.
func CountUnread(messages []DirectMessage, userID string) int {
	return len(PendingFor(messages, userID))
}
