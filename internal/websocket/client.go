// internal/websocket/client.go
package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	adminID   int64
	sessionID string
	roles     []string
	logger    *zap.Logger

	closeOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

func NewClient(hub *Hub, conn *websocket.Conn, auth *ClientAuth, logger *zap.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		adminID:   auth.AdminID,
		sessionID: auth.SessionID,
		roles:     auth.Roles,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (c *Client) AdminID() int64 { return c.adminID }

// ReadPump drains incoming frames. The feed is push-only; the only inbound
// message honored is a ping.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					c.logger.Warn("ws read error", zap.Int64("admin_id", c.adminID), zap.Error(err))
				}
				return
			}

			msg, err := ParseMessage(data)
			if err != nil {
				c.SendMessage(NewMessage(EventError, map[string]interface{}{
					"code":    "invalid_message",
					"message": "failed to parse message",
				}))
				continue
			}
			if msg.Type == EventPing {
				c.SendMessage(NewMessage(EventPong, nil))
			}
		}
	}
}

// WritePump flushes outbound messages and keeps the connection alive.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) SendMessage(msg *Message) {
	data, err := msg.ToJSON()
	if err != nil {
		c.logger.Error("failed to marshal ws message", zap.Error(err))
		return
	}

	select {
	case <-c.ctx.Done():
	case c.send <- data:
	default:
		// Slow consumer, drop the connection. Only cancel here: the hub
		// goroutine may be the caller, and its unregister channel is
		// serviced by that same goroutine. WritePump exits on the canceled
		// context and closes the conn, and ReadPump's teardown performs
		// the unregister from its own goroutine.
		c.Close()
	}
}

// Close tears the client down. Safe to call more than once. The send channel
// is never closed; pumps observe the canceled context instead.
func (c *Client) Close() {
	c.closeOnce.Do(c.cancel)
}
