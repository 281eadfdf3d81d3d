package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

type sessionRepo interface {
	Get(ctx context.Context, username entity.Username) (*entity.SessionRecord, error)
}

type SessionUseCase struct {
	logger   *slog.Logger
	sessions sessionRepo
}

func NewSessionUseCase(logger *slog.Logger, sessions sessionRepo) *SessionUseCase {
	return &SessionUseCase{
		logger:   logger,
		sessions: sessions,
	}
}

// Recover - returns the room username was last seen in.
func (that *SessionUseCase) Recover(ctx context.Context, username entity.Username) (*entity.SessionRecord, error) {
	log := that.logger.With("method", "Recover", "username", username)

	record, err := that.sessions.Get(ctx, username)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		log.Error("failed to get session", "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return record, nil
}
