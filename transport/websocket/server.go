package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

const (
	internalErrorMessage = "internal server error"
	lockStripes          = 64
	shutdownTimeout      = 5 * time.Second
)

type gameUseCase interface {
	Join(ctx context.Context, code entity.RoomCode, username entity.Username, size int) (entity.Events, error)
	Leave(ctx context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error)
	MakeMove(ctx context.Context, code entity.RoomCode, x, y int, username entity.Username) (entity.Events, error)
	UsePowerUp(ctx context.Context, code entity.RoomCode, kind string, username entity.Username) (entity.Events, error)
	RequestNewGame(ctx context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error)
	ConfirmNewGame(ctx context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error)
	CancelNewGame(ctx context.Context, code entity.RoomCode, username entity.Username) (entity.Events, error)
	Chat(ctx context.Context, code entity.RoomCode, username entity.Username, message string) (entity.Events, error)
}

// request is an inbound event whose room and username already passed validation.
type request struct {
	code     entity.RoomCode
	username entity.Username
	message  *Message
}

type handlerFunc func(ctx context.Context, c *client, req *request) (entity.Events, error)

type Server struct {
	logger   *slog.Logger
	game     gameUseCase
	hub      *hub
	upgrader websocket.Upgrader

	// stripes serialize handling and delivery of events that target the same room.
	stripes [lockStripes]sync.Mutex

	// connections counts upgraded connections whose read loop is still running.
	connections sync.WaitGroup

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,
		hub:    newHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[entity.ActionJoin] = server.handleJoin
	server.handlers[actionJoinGame] = server.handleJoin
	server.handlers[entity.ActionLeaveRoom] = server.handleLeave
	server.handlers[entity.ActionMakeMove] = server.handleMove
	server.handlers[entity.ActionUsePowerUp] = server.handlePowerUp
	server.handlers[entity.ActionRequestNewGame] = server.handleRequestNewGame
	server.handlers[entity.ActionConfirmNewGame] = server.handleConfirmNewGame
	server.handlers[entity.ActionCancelNewGame] = server.handleCancelNewGame
	server.handlers[entity.ActionChatMessage] = server.handleChat

	return server
}

// Handler - returns the HTTP handler serving the /ws endpoint.
func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", that.serveWebSocket).Methods(http.MethodGet)

	return router
}

// Start - starts WebSocket server and stops it once ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return that.Serve(ctx, listener)
}

// Serve - accepts connections on listener until ctx is done.
// It returns only after every connection has finished its last event.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}

		// hijacked connections are not tracked by Shutdown; they close through the request context
		that.connections.Wait()
	}()

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	<-stopped

	return nil
}

// serveWebSocket - upgrades the connection and reads events until the client goes away.
// Closing the connection does not take the player out of its room.
func (that *Server) serveWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWebSocket")

	that.connections.Add(1)
	defer that.connections.Done()

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn, that.logger)
	log.Info("WebSocket connection established", "client", c.id.String())

	go c.writePump()

	stop := context.AfterFunc(req.Context(), c.close)
	defer stop()

	defer func() {
		that.hub.drop(c)
		c.close()
		log.Info("WebSocket connection closed", "client", c.id.String())
	}()

	that.handleMessages(req.Context(), c)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := c.logger.With("method", "handleMessages")

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Info("connection closed unexpectedly", "error", err)
			}
			return
		}

		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.reply(c, entity.ActionError, "malformed message")
			continue
		}

		that.dispatch(ctx, c, &message)
	}
}

// dispatch - handles one inbound event. A failure or panic is reported to the sender only.
func (that *Server) dispatch(ctx context.Context, c *client, msg *Message) {
	log := c.logger.With("method", "dispatch", "action", msg.Action)

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while handling event", "panic", r)
			that.reply(c, entity.ActionError, internalErrorMessage)
		}
	}()

	handler, ok := that.handlers[msg.Action]
	if !ok {
		log.Info("unknown action")
		return
	}

	req, err := that.parseRequest(msg)
	if errors.Is(err, apperror.ErrLocalRoom) {
		that.handleLocal(c, msg)
		return
	}

	if err != nil {
		log.Info("rejected event", "error", err)
		that.reply(c, entity.ActionError, err.Error())
		return
	}

	log = log.With("room", req.code, "username", req.username)

	stripe := that.stripe(req.code)
	stripe.Lock()
	defer stripe.Unlock()

	events, err := handler(ctx, c, req)
	if err != nil {
		if isClientError(err) {
			log.Info("rejected event", "error", err)
			that.reply(c, entity.ActionError, err.Error())
			return
		}

		log.Error("failed to handle event", "error", err)
		that.reply(c, entity.ActionError, internalErrorMessage)
		return
	}

	that.deliver(c, events)
}

// parseRequest - validates the room and username every room event carries.
func (that *Server) parseRequest(msg *Message) (*request, error) {
	var target RoomPayload
	if err := decodePayload(msg, &target); err != nil {
		return nil, err
	}

	code, err := entity.ParseRoomCode(string(target.Room))
	if err != nil {
		return nil, err
	}

	username, err := entity.ParseUsername(target.Username)
	if err != nil {
		return nil, err
	}

	return &request{code: code, username: username, message: msg}, nil
}

// handleLocal - answers solo play without touching shared state. Only a join gets a reply.
func (that *Server) handleLocal(c *client, msg *Message) {
	if msg.Action != entity.ActionJoin && msg.Action != actionJoinGame {
		return
	}

	that.send(c, entity.ActionJoinedRoom, entity.JoinedRoomPayload{Room: entity.LocalRoom})
}

func (that *Server) deliver(c *client, events entity.Events) {
	for _, event := range events {
		frame, err := encodeMessage(event.Action, event.Payload)
		if err != nil {
			that.logger.Error("failed to encode event", "action", event.Action, "error", err)
			continue
		}

		switch event.Audience {
		case entity.ToSender:
			c.enqueue(frame)
		case entity.ToOthers:
			that.hub.broadcast(event.Room, frame, c)
		default:
			that.hub.broadcast(event.Room, frame, nil)
		}
	}
}

func (that *Server) reply(c *client, action, message string) {
	that.send(c, action, entity.MessagePayload{Message: message})
}

func (that *Server) send(c *client, action string, payload any) {
	frame, err := encodeMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to encode reply", "action", action, "error", err)
		return
	}

	c.enqueue(frame)
}

func (that *Server) stripe(code entity.RoomCode) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code))

	return &that.stripes[h.Sum32()%lockStripes]
}

func isClientError(err error) bool {
	return errors.Is(err, errInvalidPayload) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrInvalidRoomCode) ||
		errors.Is(err, apperror.ErrInvalidUsername)
}
