package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	"github.com/xinyujieHong/CSEN174-Project/internal/repository"
)

func newRequest(id, userID string) *db.CarpoolRequest {
	return &db.CarpoolRequest{
		ID:          id,
		UserID:      userID,
		UserName:    "Alice",
		Type:        "offer",
		Destination: "San Jose Airport",
		Date:        "2025-06-01",
		Time:        "08:30",
		Seats:       3,
	}
}

func TestCarpoolCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCarpoolRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newRequest("r1", "u1")))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "San Jose Airport", got.Destination)
	assert.Empty(t, got.Responses)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCarpoolListNewestFirst(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewCarpoolRepository(dbase)

	older := newRequest("r1", "u1")
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newRequest("r2", "u2")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID)
	assert.Equal(t, "r1", list[1].ID)
}

func TestAppendResponsePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCarpoolRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newRequest("r1", "u1")))

	first := db.Response{UserID: "u2", Message: "room for me?", Timestamp: "2025-03-15T12:00:00Z"}
	second := db.Response{UserID: "u3", Message: "me too", Timestamp: "2025-03-15T13:00:00Z"}
	// Same user responding again is kept, not de-duplicated.
	third := db.Response{UserID: "u2", Message: "actually for two", Timestamp: "2025-03-15T14:00:00Z"}

	for _, r := range []db.Response{first, second, third} {
		require.NoError(t, repo.AppendResponse(ctx, "r1", r))
	}

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, got.Responses, 3)
	assert.Equal(t, "u2", got.Responses[0].UserID)
	assert.Equal(t, "u3", got.Responses[1].UserID)
	assert.Equal(t, "actually for two", got.Responses[2].Message)
}

func TestAppendResponseKeepsLegacyEntries(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewCarpoolRepository(dbase)

	require.NoError(t, repo.Create(ctx, newRequest("r1", "u1")))

	// Simulate a pre-migration row holding a bare user-id string.
	require.NoError(t, dbase.Exec(
		"UPDATE carpool_requests SET responses = ? WHERE id = ?",
		`["legacy-user"]`, "r1").Error)

	require.NoError(t, repo.AppendResponse(ctx, "r1",
		db.Response{UserID: "u2", Message: "hi", Timestamp: "2025-03-15T12:00:00Z"}))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, got.Responses, 2)
	assert.True(t, got.Responses[0].Legacy)
	assert.Equal(t, "legacy-user", got.Responses[0].UserID)
	assert.False(t, got.Responses[1].Legacy)
	assert.Equal(t, "hi", got.Responses[1].Message)
}

func TestCarpoolUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCarpoolRepository(setupTestDB(t))

	request := newRequest("r1", "u1")
	require.NoError(t, repo.Create(ctx, request))

	request.Destination = "San Francisco"
	request.Seats = 2
	require.NoError(t, repo.Update(ctx, request))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "San Francisco", got.Destination)
	assert.Equal(t, 2, got.Seats)

	require.NoError(t, repo.Delete(ctx, "r1"))
	_, err = repo.GetByID(ctx, "r1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
