package pkg

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	roomCodeMin = 1000
	roomCodeMax = 9999
)

// GenerateRoomCode - generates a four digit room code.
func GenerateRoomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(roomCodeMax-roomCodeMin+1))
	if err != nil {
		return ""
	}

	return strconv.FormatInt(n.Int64()+roomCodeMin, 10)
}
