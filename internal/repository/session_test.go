package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
	"github.com/rocketscienceinc/xo-backend/testing/suite"
)

func TestSessionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, time.Hour)

	// Given: a session for alice
	record := entity.SessionRecord{
		Username:     "alice",
		Room:         "4821",
		BoardSize:    5,
		Mode:         entity.ModeMultiplayer,
		LastActivity: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	// When: Save is called
	err := sessionRepo.Save(ctx, record)

	// Then: the record is stored with an expiry
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "session:alice").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestSessionRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// Given: a stored session
		record := entity.SessionRecord{
			Username:     "alice",
			Room:         "4821",
			BoardSize:    5,
			Mode:         entity.ModeMultiplayer,
			LastActivity: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, sessionRepo.Save(ctx, record))

		// When: Get is called with the username
		retrieved, err := sessionRepo.Get(ctx, "alice")

		// Then: the record round-trips
		require.NoError(t, err)
		assert.Equal(t, record.Room, retrieved.Room)
		assert.Equal(t, record.BoardSize, retrieved.BoardSize)
		assert.Equal(t, record.Mode, retrieved.Mode)
		assert.True(t, record.LastActivity.Equal(retrieved.LastActivity))
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// When: Get is called for an unknown username
		retrieved, err := sessionRepo.Get(ctx, "nobody")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_Clear(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, 0)

	// Given: a stored session
	require.NoError(t, sessionRepo.Save(ctx, entity.SessionRecord{Username: "alice", Room: "1"}))

	// When: Clear is called
	err := sessionRepo.Clear(ctx, "alice")

	// Then: the session is gone
	require.NoError(t, err)

	_, err = sessionRepo.Get(ctx, "alice")
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
}
