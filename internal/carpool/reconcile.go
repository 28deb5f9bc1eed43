// Package carpool contains the read-side reconciliation of carpool
// request responses.
package carpool

import (
	"context"
	"time"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// DefaultResponseMessage fills in for legacy responses recorded before
// messages were stored alongside the responder id.
const DefaultResponseMessage = "I'm available for this carpool!"

// Fallback display names when the responder or poster cannot be
// resolved anymore (deleted account, missing profile).
const (
	FallbackResponderName = "User"
	FallbackPosterName    = "Unknown User"
)

// Directory resolves display data for enrichment. Both lookups may
// report not-found; the reconciler falls back to placeholder text and
// never propagates lookup errors into the projection.
type Directory interface {
	GetUser(ctx context.Context, userID string) (*db.User, error)
	GetProfile(ctx context.Context, userID string) (*db.Profile, error)
}

// ResponseView is the canonical, display-ready shape of one response.
type ResponseView struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	UserCollege string `json:"userCollege"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	HasCar      bool   `json:"hasCar"`
}

// Reconcile normalizes a request's stored responses (mixed legacy and
// structured entries) into display entries enriched with responder
// data.
//
// Guarantees:
//   - order is preserved as stored; entries are never re-sorted
//   - no de-duplication; a user responding twice appears twice
//   - legacy entries get DefaultResponseMessage and a timestamp taken
//     at reconciliation time
//   - purely read-side; nothing is written back
func Reconcile(ctx context.Context, responses db.ResponseList, dir Directory) []ResponseView {
	views := make([]ResponseView, 0, len(responses))

	for _, r := range responses {
		view := ResponseView{
			UserID:    r.UserID,
			Message:   r.Message,
			Timestamp: r.Timestamp,
			UserName:  FallbackResponderName,
		}
		if r.Legacy {
			view.Message = DefaultResponseMessage
			view.Timestamp = time.Now().UTC().Format(time.RFC3339)
		}

		// Profile display name wins over the account name.
		profile, err := dir.GetProfile(ctx, r.UserID)
		if err == nil && profile != nil {
			if profile.Name != "" {
				view.UserName = profile.Name
			}
			view.UserCollege = profile.College
			view.HasCar = profile.HasCar
		}
		if view.UserName == FallbackResponderName {
			if user, err := dir.GetUser(ctx, r.UserID); err == nil && user != nil && user.Name != "" {
				view.UserName = user.Name
			}
		}

		views = append(views, view)
	}

	return views
}

// PosterName resolves the display name shown on a carpool post,
// preferring the profile name over the account name.
func PosterName(ctx context.Context, dir Directory, userID string) string {
	if profile, err := dir.GetProfile(ctx, userID); err == nil && profile != nil && profile.Name != "" {
		return profile.Name
	}
	if user, err := dir.GetUser(ctx, userID); err == nil && user != nil && user.Name != "" {
		return user.Name
	}
	return FallbackPosterName
}
