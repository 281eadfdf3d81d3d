package websocket

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
)

var errInvalidPayload = errors.New("invalid payload")

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RoomPayload is the part every room event carries.
type RoomPayload struct {
	Room     RoomField `json:"room"`
	Username string    `json:"username"`
}

// RoomField accepts a room code sent as a JSON string or number. null decodes to "".
type RoomField string

func (that *RoomField) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*that = ""
		return nil
	}

	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		*that = RoomField(code)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("%w: room must be a string", errInvalidPayload)
	}

	*that = RoomField(number.String())

	return nil
}

type JoinPayload struct {
	RoomPayload
	BoardSize      Coordinate `json:"boardSize"`
	BoardSizeSnake Coordinate `json:"board_size"`
}

// Size - returns the requested board side, zero when the client sent none.
func (that *JoinPayload) Size() int {
	if that.BoardSize.set {
		return that.BoardSize.value
	}

	return that.BoardSizeSnake.value
}

type MovePayload struct {
	RoomPayload
	X Coordinate `json:"x"`
	Y Coordinate `json:"y"`
}

type PowerUpPayload struct {
	RoomPayload
	PowerUp      string `json:"powerUp"`
	PowerUpSnake string `json:"power_up"`
}

// Kind - returns the requested power-up whichever spelling the client used.
func (that *PowerUpPayload) Kind() string {
	if that.PowerUp != "" {
		return that.PowerUp
	}

	return that.PowerUpSnake
}

type ChatPayload struct {
	RoomPayload
	Message string `json:"message"`
}

// Coordinate accepts a JSON number or a numeric string.
type Coordinate struct {
	value int
	set   bool
}

func (that *Coordinate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*that = Coordinate{}
		return nil
	}

	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s is not a number", apperror.ErrInvalidCell, data)
	}

	*that = Coordinate{value: n, set: true}

	return nil
}

// decodePayload - unmarshals msg.Payload into v. An absent payload decodes into the zero value.
func decodePayload(msg *Message, v any) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, v); err != nil {
		if errors.Is(err, apperror.ErrInvalidCell) {
			return err
		}

		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}

	return nil
}

func encodeMessage(action string, payload any) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	response, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return response, nil
}
