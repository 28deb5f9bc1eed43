package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
)

// CarpoolRepository provides data access methods for carpool request
// posts.
type CarpoolRepository struct {
	db *gorm.DB
}

// NewCarpoolRepository creates a new repository bound to the given DB connection.
func NewCarpoolRepository(database *gorm.DB) *CarpoolRepository {
	return &CarpoolRepository{db: database}
}

// Create inserts a new carpool request.
func (r *CarpoolRepository) Create(ctx context.Context, request *db.CarpoolRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID fetches one request by primary key.
func (r *CarpoolRepository) GetByID(ctx context.Context, requestID string) (*db.CarpoolRequest, error) {
	var request db.CarpoolRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", requestID).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns all requests, newest first.
func (r *CarpoolRepository) List(ctx context.Context) ([]db.CarpoolRequest, error) {
	var requests []db.CarpoolRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// Update applies owner edits to the mutable post fields.
func (r *CarpoolRepository) Update(ctx context.Context, request *db.CarpoolRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// AppendResponse appends one response to the request's stored list.
//
// Behavior:
//   - The response is always written in the canonical structured
//     shape; legacy string entries only exist in pre-migration rows.
//   - Responses are append-only and never de-duplicated; the same
//     user may respond multiple times.
func (r *CarpoolRepository) AppendResponse(ctx context.Context, requestID string, response db.Response) error {
	var request db.CarpoolRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", requestID).Error; err != nil {
		return err
	}
	request.Responses = append(request.Responses, response)
	return r.db.WithContext(ctx).Model(&request).Update("responses", request.Responses).Error
}

// Delete removes a request. Ownership is checked by the service layer.
func (r *CarpoolRepository) Delete(ctx context.Context, requestID string) error {
	return r.db.WithContext(ctx).Delete(&db.CarpoolRequest{}, "id = ?", requestID).Error
}
