package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// ProfileRepository provides data access methods for the Profile model.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Get fetches a user's profile. Missing profiles surface as
// gorm.ErrRecordNotFound; the caller decides whether that is an error
// (profiles only exist after first completion).
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*db.Profile, error) {
	var profile db.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert overwrites the user's profile in place. Profiles are 1:1 with
// users and not versioned; the previous row is simply replaced.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *db.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}
