package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

type LeaderboardRepository interface {
	Upsert(ctx context.Context, username string, pointsDelta, winIncrement int) error
	Top(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error)
}

type leaderboardRepository struct {
	conn *sql.DB
}

func NewLeaderboardRepository(conn *sql.DB) LeaderboardRepository {
	return &leaderboardRepository{
		conn: conn,
	}
}

func (that *leaderboardRepository) Upsert(ctx context.Context, username string, pointsDelta, winIncrement int) error {
	query := `INSERT INTO leaderboard (username, score, wins) VALUES (?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			score = score + excluded.score,
			wins = wins + excluded.wins`

	if _, err := that.conn.ExecContext(ctx, query, username, pointsDelta, winIncrement); err != nil {
		return fmt.Errorf("can't update leaderboard: %w", err)
	}

	return nil
}

func (that *leaderboardRepository) Top(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error) {
	query := `SELECT username, score, wins FROM leaderboard ORDER BY score DESC, wins DESC, username ASC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query leaderboard: %w", err)
	}
	defer rows.Close()

	records := make([]entity.LeaderboardRecord, 0)
	for rows.Next() {
		var record entity.LeaderboardRecord
		if err = rows.Scan(&record.Username, &record.Score, &record.Wins); err != nil {
			return nil, fmt.Errorf("can't scan leaderboard record: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read leaderboard: %w", err)
	}

	return records, nil
}
