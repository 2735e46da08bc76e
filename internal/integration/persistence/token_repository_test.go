package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_IsRefreshTokenValid(t *testing.T) {
	t.Run("should accept a live token", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)

		err := repo.SaveRefreshToken(context.Background(), "live-token", uuid.New(), time.Now().UTC().Add(time.Hour))
		require.NoError(t, err)

		valid, err := repo.IsRefreshTokenValid(context.Background(), "live-token")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)

		valid, err := repo.IsRefreshTokenValid(context.Background(), "never-issued")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)

		err := repo.SaveRefreshToken(context.Background(), "stale-token", uuid.New(), time.Now().UTC().Add(-time.Minute))
		require.NoError(t, err)

		valid, err := repo.IsRefreshTokenValid(context.Background(), "stale-token")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("should reject an invalidated token", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)

		err := repo.SaveRefreshToken(context.Background(), "revoked-token", uuid.New(), time.Now().UTC().Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.InvalidateRefreshToken(context.Background(), "revoked-token"))

		valid, err := repo.IsRefreshTokenValid(context.Background(), "revoked-token")
		require.NoError(t, err)
		assert.False(t, valid)
	})
}

func TestTokenRepository_DeleteExpiredTokens(t *testing.T) {
	t.Run("should remove only tokens past expiry", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)

		require.NoError(t, repo.SaveRefreshToken(context.Background(), "old", uuid.New(), time.Now().UTC().Add(-time.Hour)))
		require.NoError(t, repo.SaveRefreshToken(context.Background(), "fresh", uuid.New(), time.Now().UTC().Add(time.Hour)))

		deleted, err := repo.DeleteExpiredTokens(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		valid, err := repo.IsRefreshTokenValid(context.Background(), "fresh")
		require.NoError(t, err)
		assert.True(t, valid)
	})
}
