package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

// RequestNewGame - asks the other player to agree on a fresh match.
// Ignored while another request is pending or when username is not seated.
func (that *GameManager) RequestNewGame(_ context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error) {
	log := that.logger.With("method", "RequestNewGame", "room", code, "username", username)

	events, err := that.update(code, func(room *entity.Room) entity.Events {
		if room.NewGameRequestedBy != "" || !room.HasPlayer(username) {
			return nil
		}

		room.NewGameRequestedBy = username

		return entity.Events{
			{
				Action:   entity.ActionNewGameRequested,
				Audience: entity.ToOthers,
				Room:     code,
				Payload:  entity.NewGameRequestedPayload{RequestedBy: username},
			},
			entity.RoomMessage(code, fmt.Sprintf("%s wants to start a new game. Waiting for confirmation...", username)),
		}
	})

	return handshakeResult(log, events, err)
}

// ConfirmNewGame - resets the board, pending effects and power-ups.
// Any event reaching it resets the match, whoever sent it and whatever the pending state.
func (that *GameManager) ConfirmNewGame(_ context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error) {
	log := that.logger.With("method", "ConfirmNewGame", "room", code, "username", username)

	events, err := that.update(code, func(room *entity.Room) entity.Events {
		room.ResetMatch()

		return entity.Events{
			entity.RoomUpdate(room),
			entity.RoomMessage(code, "New game started! Power-ups have been reset."),
		}
	})

	return handshakeResult(log, events, err)
}

// CancelNewGame - drops the pending request. The board is left as is.
func (that *GameManager) CancelNewGame(_ context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error) {
	log := that.logger.With("method", "CancelNewGame", "room", code, "username", username)

	events, err := that.update(code, func(room *entity.Room) entity.Events {
		room.NewGameRequestedBy = ""

		return entity.Events{entity.RoomMessage(code, fmt.Sprintf("%s cancelled the new game request.", username))}
	})

	return handshakeResult(log, events, err)
}

func handshakeResult(log *slog.Logger, events entity.Events, err error) (entity.Events, error) {
	if errors.Is(err, apperror.ErrRoomNotFound) {
		log.Debug("handshake for unknown room")
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to handle new game handshake: %w", err)
	}

	return events, nil
}
