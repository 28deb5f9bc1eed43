package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// Directory bundles the user and profile lookups the carpool
// reconciler and messaging views need for display enrichment. It
// satisfies carpool.Directory.
type Directory struct {
	users    *UserRepository
	profiles *ProfileRepository
}

// NewDirectory creates a directory over the given DB connection.
func NewDirectory(database *gorm.DB) *Directory {
	return &Directory{
		users:    NewUserRepository(database),
		profiles: NewProfileRepository(database),
	}
}

func (d *Directory) GetUser(ctx context.Context, userID string) (*db.User, error) {
	return d.users.GetByID(ctx, userID)
}

func (d *Directory) GetProfile(ctx context.Context, userID string) (*db.Profile, error) {
	return d.profiles.Get(ctx, userID)
}
