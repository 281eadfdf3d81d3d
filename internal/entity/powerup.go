package entity

import (
	"fmt"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
)

type PowerUp string

const (
	PowerUpBlock PowerUp = "block"
	PowerUpClear PowerUp = "clear"
)

// PowerUps holds the remaining charges of one player.
type PowerUps struct {
	Block int `json:"block"`
	Clear int `json:"clear"`
}

func DefaultPowerUps() PowerUps {
	return PowerUps{Block: 1, Clear: 1}
}

func ParsePowerUp(raw string) (PowerUp, error) {
	switch kind := PowerUp(raw); kind {
	case PowerUpBlock, PowerUpClear:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownPowerUp, raw)
	}
}

// Remaining - returns the charges left for kind.
func (that PowerUps) Remaining(kind PowerUp) int {
	switch kind {
	case PowerUpBlock:
		return that.Block
	case PowerUpClear:
		return that.Clear
	default:
		return 0
	}
}

// Consume - spends one charge of kind.
func (that *PowerUps) Consume(kind PowerUp) error {
	if _, err := ParsePowerUp(string(kind)); err != nil {
		return err
	}

	if that.Remaining(kind) <= 0 {
		return apperror.ErrNoPowerUpsLeft
	}

	switch kind {
	case PowerUpBlock:
		that.Block--
	case PowerUpClear:
		that.Clear--
	}

	return nil
}
