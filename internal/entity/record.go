package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
)

const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"

	WinPoints = 10

	// unknownOpponent fills the opponent column when a winner has nobody to beat.
	unknownOpponent = "opponent"
)

// SessionRecord lets a client find the room it was last in.
type SessionRecord struct {
	Username     Username  `json:"username"`
	Room         RoomCode  `json:"room"`
	BoardSize    int       `json:"board_size"`
	Mode         string    `json:"mode"`
	LastActivity time.Time `json:"last_activity"`
}

type HistoryEntry struct {
	Username  string    `json:"username"`
	Opponent  string    `json:"opponent"`
	Mode      string    `json:"mode"`
	Result    string    `json:"result"`
	BoardSize int       `json:"board_size"`
	Date      time.Time `json:"date"`
}

func (that *HistoryEntry) Validate() error {
	if that.Username == "" {
		return fmt.Errorf("%w: username is required", apperror.ErrInvalidResult)
	}

	switch that.Result {
	case ResultWin, ResultLoss, ResultDraw:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidResult, that.Result)
	}

	if that.BoardSize <= 0 {
		return fmt.Errorf("%w: board size %d", apperror.ErrInvalidResult, that.BoardSize)
	}

	return nil
}

type LeaderboardRecord struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Wins     int    `json:"wins"`
}

// MatchResult is a finished round as seen by the arbitrator.
// Winner is empty for a draw.
type MatchResult struct {
	Room      RoomCode
	Mode      string
	BoardSize int
	Winner    Username
	Loser     Username
	Players   []Username
	At        time.Time
}

func (that MatchResult) IsDraw() bool {
	return that.Winner == ""
}

// HistoryEntries - expands the result into the rows kept in match history.
// A win produces a win row and, when the loser is known, a loss row. A draw produces one row naming both players.
func (that MatchResult) HistoryEntries() []HistoryEntry {
	if that.IsDraw() {
		entry := HistoryEntry{
			Mode:      that.Mode,
			Result:    ResultDraw,
			BoardSize: that.BoardSize,
			Date:      that.At,
		}
		if len(that.Players) > 0 {
			entry.Username = string(that.Players[0])
		}
		if len(that.Players) > 1 {
			entry.Opponent = string(that.Players[1])
		}

		return []HistoryEntry{entry}
	}

	opponent := string(that.Loser)
	if opponent == "" {
		opponent = unknownOpponent
	}

	entries := []HistoryEntry{{
		Username:  string(that.Winner),
		Opponent:  opponent,
		Mode:      that.Mode,
		Result:    ResultWin,
		BoardSize: that.BoardSize,
		Date:      that.At,
	}}

	if that.Loser != "" {
		entries = append(entries, HistoryEntry{
			Username:  string(that.Loser),
			Opponent:  string(that.Winner),
			Mode:      that.Mode,
			Result:    ResultLoss,
			BoardSize: that.BoardSize,
			Date:      that.At,
		})
	}

	return entries
}
