package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

type HistoryRepository interface {
	Append(ctx context.Context, entry entity.HistoryEntry) error
	GetByUsername(ctx context.Context, username string, limit int) ([]entity.HistoryEntry, error)
}

type historyRepository struct {
	conn *sql.DB
}

func NewHistoryRepository(conn *sql.DB) HistoryRepository {
	return &historyRepository{
		conn: conn,
	}
}

func (that *historyRepository) Append(ctx context.Context, entry entity.HistoryEntry) error {
	query := `INSERT INTO history (username, opponent, mode, result, board_size, date) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		entry.Username, entry.Opponent, entry.Mode, entry.Result, entry.BoardSize,
		entry.Date.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("can't save history entry: %w", err)
	}

	return nil
}

// GetByUsername - returns the newest entries first.
func (that *historyRepository) GetByUsername(ctx context.Context, username string, limit int) ([]entity.HistoryEntry, error) {
	query := `SELECT username, opponent, mode, result, board_size, date FROM history WHERE username = ? ORDER BY id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, username, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query history: %w", err)
	}
	defer rows.Close()

	entries := make([]entity.HistoryEntry, 0)
	for rows.Next() {
		var (
			entry entity.HistoryEntry
			date  string
		)

		if err = rows.Scan(&entry.Username, &entry.Opponent, &entry.Mode, &entry.Result, &entry.BoardSize, &date); err != nil {
			return nil, fmt.Errorf("can't scan history entry: %w", err)
		}

		if entry.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("can't parse history date %q: %w", date, err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read history: %w", err)
	}

	return entries, nil
}
