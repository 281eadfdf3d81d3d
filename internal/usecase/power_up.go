package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

// UsePowerUp - spends one charge of kind for username.
// Rejections go to the sender only and leave the room untouched.
func (that *GameManager) UsePowerUp(_ context.Context, code entity.RoomCode, kind string, username entity.Username) (entity.Events, error) {
	log := that.logger.With("method", "UsePowerUp", "room", code, "username", username, "power_up", kind)

	powerUp, parseErr := entity.ParsePowerUp(kind)

	events, err := that.update(code, func(room *entity.Room) entity.Events {
		if parseErr != nil {
			return powerUpError(code, "Unknown power-up.")
		}

		return applyPowerUp(room, powerUp, username)
	})
	if errors.Is(err, apperror.ErrRoomNotFound) {
		return powerUpError(code, "Room not found."), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to use power-up: %w", err)
	}

	if events.Has(entity.ActionPowerUpError) {
		log.Debug("power-up rejected")
	}

	return events, nil
}

func applyPowerUp(room *entity.Room, kind entity.PowerUp, username entity.Username) entity.Events {
	counts, ok := room.PowerUps[username]
	if !ok || counts.Remaining(kind) <= 0 {
		return powerUpError(room.Code, "No power-ups left!")
	}

	var message string

	switch kind {
	case entity.PowerUpBlock:
		opponent, found := room.Opponent(username)
		if !found {
			return powerUpError(room.Code, "No opponent to block.")
		}

		room.Blocked = true
		room.BlockedPlayer = opponent
		message = fmt.Sprintf("%s blocked %s.", username, opponent)
	case entity.PowerUpClear:
		room.ClearMode = username
		message = fmt.Sprintf("%s activated clear mode.", username)
	}

	if err := counts.Consume(kind); err != nil {
		return powerUpError(room.Code, "No power-ups left!")
	}
	room.PowerUps[username] = counts

	return entity.Events{
		entity.RoomMessage(room.Code, message),
		entity.RoomUpdate(room),
	}
}

func powerUpError(code entity.RoomCode, message string) entity.Events {
	return entity.Events{entity.SenderEvent(entity.ActionPowerUpError, code, message)}
}
