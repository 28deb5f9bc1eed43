package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// UserRepository provides data access methods for the User model.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new user row. Email uniqueness is enforced by the
// schema; a duplicate surfaces as a constraint error.
func (r *UserRepository) Create(ctx context.Context, user *db.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID fetches a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a user by email, the natural unique key used at
// sign-in.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether a user with the given email already
// exists, for the signup duplicate check.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
