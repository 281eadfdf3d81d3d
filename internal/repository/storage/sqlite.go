package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS history (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		username   TEXT NOT NULL,
		opponent   TEXT NOT NULL,
		mode       TEXT NOT NULL,
		result     TEXT NOT NULL,
		board_size INTEGER NOT NULL,
		date       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS history_username_idx ON history (username, id)`,
	`CREATE TABLE IF NOT EXISTS leaderboard (
		username TEXT PRIMARY KEY,
		score    INTEGER NOT NULL DEFAULT 0,
		wins     INTEGER NOT NULL DEFAULT 0
	)`,
}

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// a single writer avoids SQLITE_BUSY between recorder workers
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init - creates the history and leaderboard tables.
func (that *Storage) Init(ctx context.Context) error {
	for _, query := range schema {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
