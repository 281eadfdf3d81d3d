package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	// maxMessageSize is the largest inbound frame. A bigger one closes the connection with 1009 (message too big).
	maxMessageSize = 64 << 10
	sendBufferSize = 64
)

// client is one websocket connection. Frames for it are queued on send and written by writePump.
type client struct {
	id     uuid.UUID
	conn   *websocket.Conn
	logger *slog.Logger

	send chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(conn *websocket.Conn, logger *slog.Logger) *client {
	id := uuid.New()

	return &client{
		id:     id,
		conn:   conn,
		logger: logger.With("client", id.String()),
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// enqueue - queues frame for delivery. A client that cannot keep up is disconnected.
func (that *client) enqueue(frame []byte) {
	select {
	case <-that.done:
		return
	default:
	}

	select {
	case that.send <- frame:
	case <-that.done:
	default:
		that.logger.Warn("send buffer is full, closing connection")
		that.close()
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}

// writePump - writes queued frames and keeps the connection alive with pings.
func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.close()
	}()

	for {
		select {
		case frame := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				that.logger.Debug("failed to write frame", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-that.done:
			_ = that.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			return
		}
	}
}
