package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
)

const (
	// LocalRoom marks solo play that never touches shared state.
	LocalRoom = "LOCAL"

	GuestUsername = "Guest"
)

// RoomCode is a validated shared room identifier. It is never LOCAL or empty.
type RoomCode string

// Username identifies a player inside a room.
type Username string

// ParseRoomCode - trims a client supplied room code. Any printable text is a valid code.
// Empty, "null" and LOCAL codes yield apperror.ErrLocalRoom so that callers can branch into solo handling.
func ParseRoomCode(raw string) (RoomCode, error) {
	code := strings.TrimSpace(raw)

	if code == "" || code == "null" || code == LocalRoom {
		return "", apperror.ErrLocalRoom
	}

	if strings.IndexFunc(code, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: control characters are not allowed", apperror.ErrInvalidRoomCode)
	}

	return RoomCode(code), nil
}

// ParseUsername - trims the name and falls back to Guest when nothing is left.
func ParseUsername(raw string) (Username, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return GuestUsername, nil
	}

	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: control characters are not allowed", apperror.ErrInvalidUsername)
	}

	return Username(name), nil
}

func (that Username) MarshalJSON() ([]byte, error) {
	if that == "" {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Username) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*that = ""
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal username: %w", err)
	}

	*that = Username(raw)

	return nil
}
