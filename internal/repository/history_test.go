package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xo-backend/internal/entity"
	"github.com/rocketscienceinc/xo-backend/testing/suite"
)

func TestHistoryRepository_GetByUsername(t *testing.T) {
	t.Run("Returns newest entries first", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)

		historyRepo := NewHistoryRepository(db)

		// Given: three entries for alice and one for bob
		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		for i, result := range []string{entity.ResultWin, entity.ResultLoss, entity.ResultDraw} {
			require.NoError(t, historyRepo.Append(ctx, entity.HistoryEntry{
				Username:  "alice",
				Opponent:  "bob",
				Mode:      entity.ModeMultiplayer,
				Result:    result,
				BoardSize: 3 + i,
				Date:      base.Add(time.Duration(i) * time.Minute),
			}))
		}
		require.NoError(t, historyRepo.Append(ctx, entity.HistoryEntry{
			Username: "bob", Opponent: "alice", Mode: entity.ModeMultiplayer, Result: entity.ResultLoss, BoardSize: 3, Date: base,
		}))

		// When: alice's history is read
		entries, err := historyRepo.GetByUsername(ctx, "alice", 100)

		// Then: only her entries come back, most recent first
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, entity.ResultDraw, entries[0].Result)
		assert.Equal(t, 5, entries[0].BoardSize)
		assert.True(t, base.Add(2*time.Minute).Equal(entries[0].Date))
		assert.Equal(t, entity.ResultWin, entries[2].Result)
	})

	t.Run("Honours the limit", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)

		historyRepo := NewHistoryRepository(db)

		for i := 0; i < 5; i++ {
			require.NoError(t, historyRepo.Append(ctx, entity.HistoryEntry{
				Username: "alice", Opponent: "bob", Mode: entity.ModeMultiplayer, Result: entity.ResultWin, BoardSize: 3, Date: time.Now(),
			}))
		}

		entries, err := historyRepo.GetByUsername(ctx, "alice", 2)

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("Unknown user has an empty history", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)

		entries, err := NewHistoryRepository(db).GetByUsername(ctx, "nobody", 10)

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestLeaderboardRepository_Upsert(t *testing.T) {
	ctx, db := suite.NewSQLite(t)

	leaderboardRepo := NewLeaderboardRepository(db)

	// Given: alice wins twice and bob once
	require.NoError(t, leaderboardRepo.Upsert(ctx, "alice", entity.WinPoints, 1))
	require.NoError(t, leaderboardRepo.Upsert(ctx, "bob", entity.WinPoints, 1))
	require.NoError(t, leaderboardRepo.Upsert(ctx, "alice", entity.WinPoints, 1))

	// When: the top of the leaderboard is read
	records, err := leaderboardRepo.Top(ctx, 10)

	// Then: scores accumulate per player and are ordered by score
	require.NoError(t, err)
	require.Equal(t, []entity.LeaderboardRecord{
		{Username: "alice", Score: 20, Wins: 2},
		{Username: "bob", Score: 10, Wins: 1},
	}, records)
}
