package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
	"github.com/rocketscienceinc/xo-backend/internal/pkg"
)

const roomCodeAttempts = 32

var ErrNoFreeRoomCode = errors.New("no free room code")

type roomRegistry interface {
	CreateOrJoin(code entity.RoomCode, size int, username entity.Username) (*entity.Room, bool, error)
	Update(code entity.RoomCode, fn func(room *entity.Room) error) error
	Remove(code entity.RoomCode, username entity.Username) (*entity.Room, error)
	Exists(code entity.RoomCode) bool
}

type recorder interface {
	RecordResult(result entity.MatchResult)
	SaveSession(record entity.SessionRecord)
	ClearSession(username entity.Username)
}

// BoardSizes bounds the board side a room creator may ask for.
type BoardSizes struct {
	Min     int
	Max     int
	Default int
}

// GameManager applies inbound room events and returns what has to be delivered.
type GameManager struct {
	logger   *slog.Logger
	rooms    roomRegistry
	recorder recorder
	sizes    BoardSizes

	now func() time.Time
}

func NewGameManager(logger *slog.Logger, rooms roomRegistry, recorder recorder, sizes BoardSizes) *GameManager {
	return &GameManager{
		logger:   logger,
		rooms:    rooms,
		recorder: recorder,
		sizes:    sizes,

		now: time.Now,
	}
}

// Join - creates the room or seats username in it.
// Size is only honoured when the room is created; zero picks the default size.
func (that *GameManager) Join(_ context.Context, code entity.RoomCode, username entity.Username, size int) (entity.Events, error) {
	log := that.logger.With("method", "Join", "room", code, "username", username)

	if size == 0 {
		size = that.sizes.Default
	}

	var (
		room    *entity.Room
		created bool
		err     error
	)

	if that.validSize(size) {
		room, created, err = that.rooms.CreateOrJoin(code, size, username)
	} else {
		// the size is fixed at creation, so a bad one only matters when there is nothing to join
		room, err = that.joinExisting(code, username)
		if errors.Is(err, apperror.ErrRoomNotFound) {
			log.Info("rejected board size", "size", size)

			message := fmt.Sprintf("Board size must be between %d and %d.", that.sizes.Min, that.sizes.Max)
			return entity.Events{entity.SenderEvent(entity.ActionJoinError, code, message)}, nil
		}
	}

	if errors.Is(err, apperror.ErrRoomFull) {
		log.Info("room is full")

		return entity.Events{entity.SenderEvent(entity.ActionJoinError, code, "Room is full.")}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}

	that.recorder.SaveSession(entity.SessionRecord{
		Username:     username,
		Room:         code,
		BoardSize:    room.Size,
		Mode:         entity.ModeMultiplayer,
		LastActivity: that.now(),
	})

	log.Info("player joined", "created", created, "players", len(room.Players))

	return entity.Events{
		{
			Action:   entity.ActionJoinedRoom,
			Audience: entity.ToSender,
			Room:     code,
			Payload:  entity.JoinedRoomPayload{Room: string(code)},
		},
		entity.RoomUpdate(room),
	}, nil
}

// Leave - takes username out of the room. The last player to leave deletes it silently.
func (that *GameManager) Leave(_ context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error) {
	log := that.logger.With("method", "Leave", "room", code, "username", username)

	room, err := that.rooms.Remove(code, username)
	if errors.Is(err, apperror.ErrRoomNotFound) || errors.Is(err, apperror.ErrNotInRoom) {
		log.Debug("nothing to leave", "error", err)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to leave room: %w", err)
	}

	that.recorder.ClearSession(username)

	if room == nil {
		log.Info("room deleted")
		return nil, nil
	}

	log.Info("player left")

	return entity.Events{
		entity.RoomMessage(code, fmt.Sprintf("%s left the room.", username)),
		entity.RoomUpdate(room),
	}, nil
}

// Chat - relays message verbatim to everyone in the room.
func (that *GameManager) Chat(_ context.Context, code entity.RoomCode, username entity.Username, message string) (entity.Events, error) {
	return entity.Events{{
		Action:   entity.ActionChatUpdate,
		Audience: entity.ToRoom,
		Room:     code,
		Payload:  entity.ChatPayload{Username: username, Message: message},
	}}, nil
}

// AllocateRoomCode - picks a four digit code that no live room uses.
func (that *GameManager) AllocateRoomCode(_ context.Context) (entity.RoomCode, error) {
	for i := 0; i < roomCodeAttempts; i++ {
		code, err := entity.ParseRoomCode(pkg.GenerateRoomCode())
		if err != nil {
			continue
		}

		if !that.rooms.Exists(code) {
			return code, nil
		}
	}

	return "", ErrNoFreeRoomCode
}

func (that *GameManager) validSize(size int) bool {
	return size >= that.sizes.Min && size <= that.sizes.Max
}

// joinExisting - seats username in a room that is already live. Never creates one.
func (that *GameManager) joinExisting(code entity.RoomCode, username entity.Username) (*entity.Room, error) {
	var snapshot *entity.Room

	err := that.rooms.Update(code, func(room *entity.Room) error {
		if err := room.AddPlayer(username); err != nil {
			return err
		}

		snapshot = room.Snapshot()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// update - runs fn under the room lock. Unknown rooms are reported as apperror.ErrRoomNotFound.
func (that *GameManager) update(code entity.RoomCode, fn func(room *entity.Room) entity.Events) (entity.Events, error) {
	var events entity.Events

	err := that.rooms.Update(code, func(room *entity.Room) error {
		events = fn(room)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}
