package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Outgoing buffer per connection. A subscriber that falls this far
	// behind is disconnected rather than allowed to stall the hub.
	sendBufferSize = 256
)

// Connection wraps a single websocket subscriber. Reads and writes each run
// on their own goroutine; everything outbound goes through the buffered send
// channel so the hub never blocks on a slow peer.
type Connection struct {
	conn      *websocket.Conn
	hub       *Hub
	send      chan *Message
	userID    uint64
	logger    coreport.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection wrapper for an upgraded websocket
func NewConnection(conn *websocket.Conn, hub *Hub, userID uint64, logger coreport.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:   conn,
		hub:    hub,
		send:   make(chan *Message, sendBufferSize),
		userID: userID,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// UserID returns the authenticated user this connection belongs to
func (c *Connection) UserID() uint64 {
	return c.userID
}

// Start begins the read and write pumps
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close tears the connection down exactly once. The hub drops any remaining
// subscriptions when it observes the disconnect.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// Send queues a message for delivery. A full buffer closes the connection;
// a disconnect never unseats the player, so the client can resubscribe.
func (c *Connection) Send(msg *Message) {
	defer func() {
		if r := recover(); r != nil {
			// send channel closed during shutdown
			c.logger.Debug("Send on closed connection", map[string]any{
				"user_id": c.userID,
			})
		}
	}()

	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	default:
		c.logger.Warn("Connection send buffer full, closing", map[string]any{
			"user_id": c.userID,
		})
		_ = c.Close()
	}
}

func (c *Connection) readPump() {
	defer func() {
		c.hub.Disconnect(c)
		_ = c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var cmd ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket read error", map[string]any{
					"user_id": c.userID,
					"error":   err.Error(),
				})
			}
			return
		}

		c.handleCommand(&cmd)
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("WebSocket write error", map[string]any{
					"user_id": c.userID,
					"error":   err.Error(),
				})
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) handleCommand(cmd *ClientCommand) {
	switch cmd.Action {
	case ActionSubscribe:
		if cmd.RoomID == "" {
			return
		}
		c.hub.Subscribe(c, cmd.RoomID)
	case ActionUnsubscribe:
		if cmd.RoomID == "" {
			return
		}
		c.hub.Unsubscribe(c, cmd.RoomID)
	default:
		c.logger.Debug("Unknown client command", map[string]any{
			"user_id": c.userID,
			"action":  cmd.Action,
		})
	}
}
