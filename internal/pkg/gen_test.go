package pkg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoomCode(t *testing.T) {
	for i := 0; i < 500; i++ {
		code := GenerateRoomCode()

		require.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, roomCodeMin)
		assert.LessOrEqual(t, n, roomCodeMax)
	}
}
