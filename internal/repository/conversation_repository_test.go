package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	"github.com/xinyujieHong/CSEN174-Project/internal/repository"
)

func TestGetOrCreateIsDirectionless(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewConversationRepository(setupTestDB(t))

	first, err := repo.GetOrCreate(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice__bob", first.ID)
	assert.Equal(t, "alice", first.ParticipantA)
	assert.Equal(t, "bob", first.ParticipantB)
	assert.Equal(t, "pending", first.Status)

	// Contact from the other direction lands on the same row.
	second, err := repo.GetOrCreate(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	convs, err := repo.ListForUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewConversationRepository(setupTestDB(t))

	_, err := repo.GetOrCreate(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = repo.GetOrCreate(ctx, "carol", "alice")
	require.NoError(t, err)
	_, err = repo.GetOrCreate(ctx, "bob", "carol")
	require.NoError(t, err)

	convs, err := repo.ListForUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, convs, 2)

	convs, err = repo.ListForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestUpdateStatusDecidesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewConversationRepository(setupTestDB(t))

	conv, err := repo.GetOrCreate(ctx, "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, conv.ID, "accepted"))

	got, err := repo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)

	// A second transition attempt is rejected, whatever the target.
	assert.ErrorIs(t, repo.UpdateStatus(ctx, conv.ID, "denied"), repository.ErrStatusFinal)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, conv.ID, "accepted"), repository.ErrStatusFinal)

	got, err = repo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)
}

func TestUpdateStatusUnknownConversation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewConversationRepository(setupTestDB(t))

	err := repo.UpdateStatus(ctx, "ghost__nobody", "accepted")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestConversationHasParticipant(t *testing.T) {
	conv := db.Conversation{ParticipantA: "alice", ParticipantB: "bob"}
	assert.True(t, conv.HasParticipant("alice"))
	assert.True(t, conv.HasParticipant("bob"))
	assert.False(t, conv.HasParticipant("carol"))
}
