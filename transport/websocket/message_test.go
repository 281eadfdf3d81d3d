package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
)

func TestCoordinate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		set   bool
		err   error
	}{
		{name: "Number", input: `2`, want: 2, set: true},
		{name: "Numeric string", input: `"7"`, want: 7, set: true},
		{name: "Padded string", input: `" 3 "`, want: 3, set: true},
		{name: "Negative", input: `-1`, want: -1, set: true},
		{name: "Null", input: `null`},
		{name: "Word", input: `"left"`, err: apperror.ErrInvalidCell},
		{name: "Fraction", input: `1.5`, err: apperror.ErrInvalidCell},
		{name: "Bool", input: `true`, err: apperror.ErrInvalidCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Coordinate
			err := json.Unmarshal([]byte(tt.input), &c)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, c.value)
			assert.Equal(t, tt.set, c.set)
		})
	}
}

func TestDecodePayload(t *testing.T) {
	t.Run("Both spellings of board size", func(t *testing.T) {
		var camel, snake JoinPayload

		require.NoError(t, decodePayload(&Message{Payload: json.RawMessage(`{"room":"1","boardSize":5}`)}, &camel))
		require.NoError(t, decodePayload(&Message{Payload: json.RawMessage(`{"room":"1","board_size":"6"}`)}, &snake))

		assert.Equal(t, 5, camel.Size())
		assert.Equal(t, 6, snake.Size())
		assert.Equal(t, RoomField("1"), camel.Room)
	})

	t.Run("Both spellings of power-up", func(t *testing.T) {
		var camel, snake PowerUpPayload

		require.NoError(t, decodePayload(&Message{Payload: json.RawMessage(`{"powerUp":"block"}`)}, &camel))
		require.NoError(t, decodePayload(&Message{Payload: json.RawMessage(`{"power_up":"clear"}`)}, &snake))

		assert.Equal(t, "block", camel.Kind())
		assert.Equal(t, "clear", snake.Kind())
	})

	t.Run("Numeric room code", func(t *testing.T) {
		var payload RoomPayload

		require.NoError(t, decodePayload(&Message{Payload: json.RawMessage(`{"room":4821}`)}, &payload))

		assert.Equal(t, RoomField("4821"), payload.Room)
	})

	t.Run("Missing payload decodes to zero value", func(t *testing.T) {
		var payload RoomPayload

		require.NoError(t, decodePayload(&Message{}, &payload))

		assert.Empty(t, payload.Room)
	})

	t.Run("Wrong shape", func(t *testing.T) {
		var payload RoomPayload

		err := decodePayload(&Message{Payload: json.RawMessage(`{"room":{"id":1}}`)}, &payload)

		require.ErrorIs(t, err, errInvalidPayload)
	})
}
