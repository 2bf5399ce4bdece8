// internal/websocket/hub.go
package websocket

import (
	"context"
	"sync"

	"farepass-service/internal/pkg/jwt"
	"farepass-service/internal/pkg/session"

	"go.uber.org/zap"
)

// Hub fans notification events out to connected admin clients. An admin may
// hold several connections (tabs); nil AdminIDs broadcasts to everyone.
type Hub struct {
	clients map[int64]map[*Client]bool
	mu      sync.RWMutex

	Register   chan *Client
	unregister chan *Client

	broadcast chan *BroadcastMessage

	jwtManager     *jwt.Manager
	sessionManager *session.Manager
	logger         *zap.Logger
}

type BroadcastMessage struct {
	AdminIDs []int64
	Message  *Message
}

func NewHub(jwtManager *jwt.Manager, sessionManager *session.Manager, logger *zap.Logger) *Hub {
	return &Hub{
		clients:        make(map[int64]map[*Client]bool),
		Register:       make(chan *Client),
		unregister:     make(chan *Client),
		broadcast:      make(chan *BroadcastMessage, 256),
		jwtManager:     jwtManager,
		sessionManager: sessionManager,
		logger:         logger,
	}
}

// ClientAuth is the verified identity a connection runs under.
type ClientAuth struct {
	AdminID   int64
	SessionID string
	Roles     []string
}

// AuthenticateClient validates the access token against the blacklist and the
// Redis session before the socket is admitted.
func (h *Hub) AuthenticateClient(ctx context.Context, token string) (*ClientAuth, error) {
	claims, err := h.jwtManager.Verify(token)
	if err != nil {
		return nil, err
	}

	blacklisted, err := h.sessionManager.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}

	if _, err := h.sessionManager.GetSession(ctx, claims.AdminID, claims.ID); err != nil {
		return nil, err
	}

	return &ClientAuth{
		AdminID:   claims.AdminID,
		SessionID: claims.ID,
		Roles:     claims.Roles,
	}, nil
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.adminID] == nil {
		h.clients[client.adminID] = make(map[*Client]bool)
	}
	h.clients[client.adminID][client] = true

	h.logger.Info("ws client connected",
		zap.Int64("admin_id", client.adminID),
		zap.String("session_id", client.sessionID),
		zap.Int("total", h.totalClients()),
	)

	client.SendMessage(NewMessage(EventConnected, map[string]interface{}{
		"admin_id":   client.adminID,
		"session_id": client.sessionID,
	}))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.adminID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}

	delete(clients, client)
	client.Close()
	if len(clients) == 0 {
		delete(h.clients, client.adminID)
	}

	h.logger.Info("ws client disconnected",
		zap.Int64("admin_id", client.adminID),
		zap.Int("total", h.totalClients()),
	)
}

func (h *Hub) deliver(msg *BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.AdminIDs == nil {
		for _, clients := range h.clients {
			for client := range clients {
				client.SendMessage(msg.Message)
			}
		}
		return
	}

	for _, adminID := range msg.AdminIDs {
		for client := range h.clients[adminID] {
			client.SendMessage(msg.Message)
		}
	}
}

// PushNotification sends a notification event; a nil adminIDs slice reaches
// every connected admin.
func (h *Hub) PushNotification(adminIDs []int64, payload interface{}) {
	h.broadcast <- &BroadcastMessage{
		AdminIDs: adminIDs,
		Message:  NewMessage(EventNotification, payload),
	}
}

// PushUnreadCount updates one admin's unread badge.
func (h *Hub) PushUnreadCount(adminID int64, count int64) {
	h.broadcast <- &BroadcastMessage{
		AdminIDs: []int64{adminID},
		Message: NewMessage(EventNotificationCount, map[string]interface{}{
			"unread_count": count,
		}),
	}
}

func (h *Hub) totalClients() int {
	total := 0
	for _, clients := range h.clients {
		total += len(clients)
	}
	return total
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			client.Close()
		}
	}
	h.clients = make(map[int64]map[*Client]bool)
}
