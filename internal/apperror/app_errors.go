package apperror

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrNotInRoom       = errors.New("player is not in room")
	ErrLocalRoom       = errors.New("local room has no shared state")
	ErrInvalidRoomCode = errors.New("invalid room code")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidCell     = errors.New("invalid cell coordinates")
	ErrNoPowerUpsLeft  = errors.New("no power-ups left")
	ErrUnknownPowerUp  = errors.New("unknown power-up")
	ErrInvalidResult   = errors.New("invalid game result")
	ErrSessionNotFound = errors.New("session not found")
)
