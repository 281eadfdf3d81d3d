package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	Save(ctx context.Context, record entity.SessionRecord) error
	Get(ctx context.Context, username entity.Username) (*entity.SessionRecord, error)
	Clear(ctx context.Context, username entity.Username) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository - stores session records in Redis. A zero ttl keeps them forever.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSession) Save(ctx context.Context, record entity.SessionRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err = that.client.Set(ctx, sessionKey(record.Username), recordJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) Get(ctx context.Context, username entity.Username) (*entity.SessionRecord, error) {
	response, err := that.client.Get(ctx, sessionKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var record entity.SessionRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &record, nil
}

func (that *dbSession) Clear(ctx context.Context, username entity.Username) error {
	if err := that.client.Del(ctx, sessionKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func sessionKey(username entity.Username) string {
	return sessionKeyPrefix + string(username)
}
