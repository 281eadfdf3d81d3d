package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
	"github.com/rocketscienceinc/xo-backend/internal/tictactoe"
)

// MakeMove - handles one click on cell (x, y). Every call resolves to at most one of
// a clear, a block skip or a placement.
func (that *GameManager) MakeMove(_ context.Context, code entity.RoomCode, x, y int, username entity.Username) (entity.Events, error) {
	log := that.logger.With("method", "MakeMove", "room", code, "username", username)

	events, err := that.update(code, func(room *entity.Room) entity.Events {
		return that.arbitrate(room, x, y, username)
	})
	if errors.Is(err, apperror.ErrRoomNotFound) {
		log.Info("move for unknown room")

		return entity.Events{entity.SenderEvent(entity.ActionGameMessage, code, "Game room not found.")}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if events.Has(entity.ActionGameOver) {
		log.Info("round finished")
	}

	return events, nil
}

func (that *GameManager) arbitrate(room *entity.Room, x, y int, username entity.Username) entity.Events {
	if !room.IsFull() {
		return entity.Events{entity.RoomUpdate(room)}
	}

	if !room.InBounds(x, y) {
		return nil
	}

	if room.ClearMode == username {
		return resolveClear(room, x, y, username)
	}

	if room.Blocked && room.BlockedPlayer == username {
		room.Blocked = false
		room.BlockedPlayer = ""
		room.FlipTurn()

		return entity.Events{
			entity.RoomMessage(room.Code, fmt.Sprintf("%s was blocked this turn.", username)),
			entity.RoomUpdate(room),
		}
	}

	expected, ok := room.PlayerFor(room.Turn)
	if !ok {
		return entity.Events{entity.RoomUpdate(room)}
	}

	if expected != username || room.Board[x][y] != tictactoe.Empty {
		return nil
	}

	symbol := room.Turn
	room.Board[x][y] = symbol
	room.FlipTurn()

	events := entity.Events{entity.RoomUpdate(room)}

	switch {
	case tictactoe.CheckWinner(room.Board, symbol, tictactoe.WinLength(room.Size)):
		loser, _ := room.Opponent(username)
		events = append(events, that.finishRound(room, username, loser)...)
	case tictactoe.IsFull(room.Board):
		events = append(events, that.finishRound(room, "", "")...)
	}

	return events
}

// resolveClear - spends the pending clear on cell (x, y). An empty target wastes it.
func resolveClear(room *entity.Room, x, y int, username entity.Username) entity.Events {
	room.ClearMode = ""

	if room.Board[x][y] == tictactoe.Empty {
		return entity.Events{entity.RoomMessage(room.Code, fmt.Sprintf("%s attempted to clear an empty cell.", username))}
	}

	room.Board[x][y] = tictactoe.Empty

	return entity.Events{
		entity.RoomMessage(room.Code, fmt.Sprintf("%s cleared a cell.", username)),
		entity.RoomUpdate(room),
	}
}

// finishRound - announces the result, hands it to the recorder and starts a fresh board.
// An empty winner means a draw.
func (that *GameManager) finishRound(room *entity.Room, winner, loser entity.Username) entity.Events {
	status := entity.StatusWin
	if winner == "" {
		status = entity.StatusDraw
	}

	that.recorder.RecordResult(entity.MatchResult{
		Room:      room.Code,
		Mode:      entity.ModeMultiplayer,
		BoardSize: room.Size,
		Winner:    winner,
		Loser:     loser,
		Players:   append([]entity.Username{}, room.Players...),
		At:        that.now(),
	})

	gameOver := entity.Event{
		Action:   entity.ActionGameOver,
		Audience: entity.ToRoom,
		Room:     room.Code,
		Payload:  entity.GameOverPayload{Winner: winner, Loser: loser, Status: status},
	}

	room.ResetBoard()

	return entity.Events{gameOver, entity.RoomUpdate(room)}
}
