package entity

import (
	"fmt"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/tictactoe"
)

const (
	MaxPlayers = 2

	ModeMultiplayer = "multiplayer"
)

// Room is the authoritative state of one shared match.
// players[0] plays X and players[1] plays O.
type Room struct {
	Code               RoomCode              `json:"-"`
	Board              tictactoe.Board       `json:"board"`
	Players            []Username            `json:"players"`
	Turn               tictactoe.Symbol      `json:"turn"`
	PowerUps           map[Username]PowerUps `json:"powerups"`
	Size               int                   `json:"size"`
	Blocked            bool                  `json:"blocked"`
	BlockedPlayer      Username              `json:"blocked_player"`
	ClearMode          Username              `json:"clear_mode"`
	NewGameRequestedBy Username              `json:"new_game_requested_by"`
}

// NewRoom - creates a room with creator as the sole X player.
func NewRoom(code RoomCode, size int, creator Username) *Room {
	return &Room{
		Code:     code,
		Board:    tictactoe.EmptyBoard(size),
		Players:  []Username{creator},
		Turn:     tictactoe.PlayerX,
		PowerUps: map[Username]PowerUps{creator: DefaultPowerUps()},
		Size:     size,
	}
}

func (that *Room) HasPlayer(username Username) bool {
	for _, player := range that.Players {
		if player == username {
			return true
		}
	}

	return false
}

func (that *Room) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

func (that *Room) IsEmpty() bool {
	return len(that.Players) == 0
}

// AddPlayer - seats username as the next player. Joining twice is a no-op.
func (that *Room) AddPlayer(username Username) error {
	if that.HasPlayer(username) {
		return nil
	}

	if that.IsFull() {
		return fmt.Errorf("%w: room %s", apperror.ErrRoomFull, that.Code)
	}

	that.Players = append(that.Players, username)
	that.PowerUps[username] = DefaultPowerUps()

	return nil
}

// RemovePlayer - drops username and its power-ups. Returns false if it was not seated.
func (that *Room) RemovePlayer(username Username) bool {
	for i, player := range that.Players {
		if player != username {
			continue
		}

		that.Players = append(that.Players[:i:i], that.Players[i+1:]...)
		delete(that.PowerUps, username)

		if that.BlockedPlayer == username {
			that.Blocked = false
			that.BlockedPlayer = ""
		}
		if that.ClearMode == username {
			that.ClearMode = ""
		}
		if that.NewGameRequestedBy == username {
			that.NewGameRequestedBy = ""
		}

		return true
	}

	return false
}

// Opponent - returns the other seated player.
func (that *Room) Opponent(username Username) (Username, bool) {
	if len(that.Players) < MaxPlayers {
		return "", false
	}

	switch username {
	case that.Players[0]:
		return that.Players[1], true
	case that.Players[1]:
		return that.Players[0], true
	default:
		return "", false
	}
}

// PlayerFor - returns the player owning symbol.
func (that *Room) PlayerFor(symbol tictactoe.Symbol) (Username, bool) {
	index := 0
	if symbol == tictactoe.PlayerO {
		index = 1
	}

	if index >= len(that.Players) {
		return "", false
	}

	return that.Players[index], true
}

func (that *Room) FlipTurn() {
	that.Turn = that.Turn.Other()
}

func (that *Room) InBounds(x, y int) bool {
	return tictactoe.InBounds(that.Size, x, y)
}

// ResetBoard - clears the grid and hands the first move back to X.
func (that *Room) ResetBoard() {
	that.Board = tictactoe.EmptyBoard(that.Size)
	that.Turn = tictactoe.PlayerX
}

// ResetMatch - starts over: board, pending effects, handshake state and every seated player's power-ups.
func (that *Room) ResetMatch() {
	that.ResetBoard()
	that.Blocked = false
	that.BlockedPlayer = ""
	that.ClearMode = ""
	that.NewGameRequestedBy = ""

	for _, player := range that.Players {
		that.PowerUps[player] = DefaultPowerUps()
	}
}

// Snapshot - returns a deep copy safe to hand to the transport after the room lock is released.
func (that *Room) Snapshot() *Room {
	powerUps := make(map[Username]PowerUps, len(that.PowerUps))
	for player, counts := range that.PowerUps {
		powerUps[player] = counts
	}

	return &Room{
		Code:               that.Code,
		Board:              that.Board.Clone(),
		Players:            append([]Username{}, that.Players...),
		Turn:               that.Turn,
		PowerUps:           powerUps,
		Size:               that.Size,
		Blocked:            that.Blocked,
		BlockedPlayer:      that.BlockedPlayer,
		ClearMode:          that.ClearMode,
		NewGameRequestedBy: that.NewGameRequestedBy,
	}
}
