package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

const defaultHistoryBoardSize = 3

type historyRepo interface {
	Append(ctx context.Context, entry entity.HistoryEntry) error
	GetByUsername(ctx context.Context, username string, limit int) ([]entity.HistoryEntry, error)
}

type leaderboardRepo interface {
	Top(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error)
}

// Limits caps how many rows a single history or leaderboard query returns.
type Limits struct {
	Default int
	Max     int
}

type HistoryUseCase struct {
	logger      *slog.Logger
	history     historyRepo
	leaderboard leaderboardRepo
	limits      Limits

	now func() time.Time
}

func NewHistoryUseCase(logger *slog.Logger, history historyRepo, leaderboard leaderboardRepo, limits Limits) *HistoryUseCase {
	return &HistoryUseCase{
		logger:      logger,
		history:     history,
		leaderboard: leaderboard,
		limits:      limits,

		now: time.Now,
	}
}

// History - returns the newest entries of username first. An empty username has no history.
func (that *HistoryUseCase) History(ctx context.Context, username string, limit int) ([]entity.HistoryEntry, error) {
	if username == "" {
		return []entity.HistoryEntry{}, nil
	}

	entries, err := that.history.GetByUsername(ctx, username, that.clamp(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return entries, nil
}

// AddHistory - stores an entry reported by a client, filling in mode, board size and date when missing.
func (that *HistoryUseCase) AddHistory(ctx context.Context, entry entity.HistoryEntry) error {
	log := that.logger.With("method", "AddHistory", "username", entry.Username)

	if entry.Mode == "" {
		entry.Mode = entity.ModeMultiplayer
	}
	if entry.BoardSize == 0 {
		entry.BoardSize = defaultHistoryBoardSize
	}
	if entry.Date.IsZero() {
		entry.Date = that.now().UTC()
	}

	if err := entry.Validate(); err != nil {
		log.Info("rejected history entry", "error", err)
		return err
	}

	if err := that.history.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	return nil
}

// Leaderboard - returns the best players by score, then wins.
func (that *HistoryUseCase) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error) {
	records, err := that.leaderboard.Top(ctx, that.clamp(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return records, nil
}

func (that *HistoryUseCase) clamp(limit int) int {
	if limit <= 0 {
		return that.limits.Default
	}

	if that.limits.Max > 0 && limit > that.limits.Max {
		return that.limits.Max
	}

	return limit
}
