package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

// actionJoinGame is the join event name older web clients send.
const actionJoinGame = "join_game"

func (that *Server) handleJoin(ctx context.Context, c *client, req *request) (entity.Events, error) {
	var payload JoinPayload
	if err := decodePayload(req.message, &payload); err != nil {
		return nil, err
	}

	events, err := that.game.Join(ctx, req.code, req.username, payload.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}

	if events.Has(entity.ActionJoinedRoom) {
		that.hub.subscribe(req.code, c)
	}

	return events, nil
}

func (that *Server) handleLeave(ctx context.Context, c *client, req *request) (entity.Events, error) {
	that.hub.unsubscribe(req.code, c)

	events, err := that.game.Leave(ctx, req.code, req.username)
	if err != nil {
		return nil, fmt.Errorf("failed to leave room: %w", err)
	}

	return events, nil
}

func (that *Server) handleMove(ctx context.Context, _ *client, req *request) (entity.Events, error) {
	var payload MovePayload
	if err := decodePayload(req.message, &payload); err != nil {
		return nil, err
	}

	if !payload.X.set || !payload.Y.set {
		return nil, fmt.Errorf("%w: x and y are required", apperror.ErrInvalidCell)
	}

	events, err := that.game.MakeMove(ctx, req.code, payload.X.value, payload.Y.value, req.username)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	return events, nil
}

func (that *Server) handlePowerUp(ctx context.Context, _ *client, req *request) (entity.Events, error) {
	var payload PowerUpPayload
	if err := decodePayload(req.message, &payload); err != nil {
		return nil, err
	}

	events, err := that.game.UsePowerUp(ctx, req.code, payload.Kind(), req.username)
	if err != nil {
		return nil, fmt.Errorf("failed to use power-up: %w", err)
	}

	return events, nil
}

func (that *Server) handleRequestNewGame(ctx context.Context, _ *client, req *request) (entity.Events, error) {
	return that.game.RequestNewGame(ctx, req.code, req.username)
}

func (that *Server) handleConfirmNewGame(ctx context.Context, _ *client, req *request) (entity.Events, error) {
	return that.game.ConfirmNewGame(ctx, req.code, req.username)
}

func (that *Server) handleCancelNewGame(ctx context.Context, _ *client, req *request) (entity.Events, error) {
	return that.game.CancelNewGame(ctx, req.code, req.username)
}

func (that *Server) handleChat(ctx context.Context, _ *client, req *request) (entity.Events, error) {
	var payload ChatPayload
	if err := decodePayload(req.message, &payload); err != nil {
		return nil, err
	}

	return that.game.Chat(ctx, req.code, req.username, payload.Message)
}
