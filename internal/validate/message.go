package validate

import (
	"strings"
	"unicode/utf8"
)

// MaxMessageLength bounds direct-message content.
const MaxMessageLength = 1000

var validStatuses = map[string]bool{
	"pending":  true,
	"accepted": true,
	"denied":   true,
	"read":     true,
}

// IsValidMessageContent accepts 1-1000 characters after trimming.
func IsValidMessageContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	return trimmed != "" && utf8.RuneCountInString(trimmed) <= MaxMessageLength
}

// IsValidMessageStatus accepts exactly pending, accepted, denied or
// read.
func IsValidMessageStatus(status string) bool {
	return validStatuses[status]
}

// SanitizeMessageContent trims surrounding whitespace and truncates to
// MaxMessageLength.
func SanitizeMessageContent(content string) string {
	trimmed := strings.TrimSpace(content)
	if runes := []rune(trimmed); len(runes) > MaxMessageLength {
		return string(runes[:MaxMessageLength])
	}
	return trimmed
}

// CanSendMessage requires both ids non-empty and distinct. Ids are
// deliberately not trimmed here; whitespace-only ids pass and are the
// caller's problem, matching the permissive boundary contract.
func CanSendMessage(senderID, receiverID string) bool {
	if senderID == "" || receiverID == "" {
		return false
	}
	return senderID != receiverID
}
