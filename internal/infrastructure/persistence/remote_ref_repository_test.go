package persistence

import (
	"context"
	"testing"

	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/erp/partysync/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRemoteRefTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.RemoteCustomerRefModel{}, &models.PartyModel{})
	require.NoError(t, err)

	return db
}

func newRef(t *testing.T, channelID uuid.UUID, remoteID string) *party.RemoteCustomerRef {
	t.Helper()
	ref, err := party.NewRemoteCustomerRef(channelID, uuid.New(), remoteID)
	require.NoError(t, err)
	return ref
}

func TestGormRemoteCustomerRefRepository_FindByChannelAndRemoteID(t *testing.T) {
	db := setupRemoteRefTestDB(t)
	repo := NewGormRemoteCustomerRefRepository(db)
	ctx := context.Background()

	t.Run("finds saved ref", func(t *testing.T) {
		channelID := uuid.New()
		ref := newRef(t, channelID, "42")
		require.NoError(t, repo.Save(ctx, ref))

		found, err := repo.FindByChannelAndRemoteID(ctx, channelID, "42")
		require.NoError(t, err)
		assert.Equal(t, ref.PartyID, found.PartyID)
		assert.Equal(t, "42", found.RemoteID)
	})

	t.Run("returns not found for missing ref", func(t *testing.T) {
		_, err := repo.FindByChannelAndRemoteID(ctx, uuid.New(), "42")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("same remote id in another channel is a different ref", func(t *testing.T) {
		channelA := uuid.New()
		channelB := uuid.New()
		refA := newRef(t, channelA, "77")
		refB := newRef(t, channelB, "77")
		require.NoError(t, repo.Save(ctx, refA))
		require.NoError(t, repo.Save(ctx, refB))

		found, err := repo.FindByChannelAndRemoteID(ctx, channelB, "77")
		require.NoError(t, err)
		assert.Equal(t, refB.PartyID, found.PartyID)
	})

	t.Run("rejects ambiguous non-guest rows", func(t *testing.T) {
		channelID := uuid.New()
		for i := 0; i < 2; i++ {
			var model models.RemoteCustomerRefModel
			model.FromDomain(newRef(t, channelID, "99"))
			require.NoError(t, db.Create(&model).Error)
		}

		_, err := repo.FindByChannelAndRemoteID(ctx, channelID, "99")
		assert.ErrorIs(t, err, party.ErrAmbiguousRemoteRef)
	})

	t.Run("returns oldest guest ref when several exist", func(t *testing.T) {
		channelID := uuid.New()
		first := newRef(t, channelID, party.GuestRemoteID)
		second := newRef(t, channelID, party.GuestRemoteID)
		second.CreatedAt = first.CreatedAt.Add(1)
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		found, err := repo.FindByChannelAndRemoteID(ctx, channelID, party.GuestRemoteID)
		require.NoError(t, err)
		assert.Equal(t, first.PartyID, found.PartyID)
	})
}

func TestGormRemoteCustomerRefRepository_Save(t *testing.T) {
	db := setupRemoteRefTestDB(t)
	repo := NewGormRemoteCustomerRefRepository(db)
	ctx := context.Background()

	t.Run("rejects duplicate non-guest ref in same channel", func(t *testing.T) {
		channelID := uuid.New()
		require.NoError(t, repo.Save(ctx, newRef(t, channelID, "1001")))

		err := repo.Save(ctx, newRef(t, channelID, "1001"))
		assert.ErrorIs(t, err, party.ErrDuplicatePartyInChannel)
	})

	t.Run("allows many guest refs in same channel", func(t *testing.T) {
		channelID := uuid.New()
		require.NoError(t, repo.Save(ctx, newRef(t, channelID, party.GuestRemoteID)))
		require.NoError(t, repo.Save(ctx, newRef(t, channelID, party.GuestRemoteID)))
		require.NoError(t, repo.Save(ctx, newRef(t, channelID, party.GuestRemoteID)))
	})

	t.Run("resaving the same ref is not a duplicate", func(t *testing.T) {
		channelID := uuid.New()
		ref := newRef(t, channelID, "2002")
		require.NoError(t, repo.Save(ctx, ref))
		require.NoError(t, repo.Save(ctx, ref))
	})
}
