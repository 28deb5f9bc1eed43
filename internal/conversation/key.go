// Package conversation derives canonical conversation identifiers.
package conversation

import "strings"

// Separator joins the two participant ids. User ids are UUIDs, which
// can never contain a double underscore, so the mapping is
// collision-free.
const Separator = "__"

// Key maps an unordered pair of user ids to the canonical conversation
// id: the ids sorted lexicographically and joined with Separator.
// Starting a conversation from either side lands on the same record.
//
// Equal ids still produce a defined key; rejecting self-conversations
// is the caller's job via validate.CanSendMessage.
func Key(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + Separator + b
}

// Split recovers the ordered participant pair from a conversation key.
func Split(key string) (a, b string, ok bool) {
	parts := strings.SplitN(key, Separator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
