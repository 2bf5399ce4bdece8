package websocket

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(hub *Hub, adminID int64) *Client {
	return NewClient(hub, nil, &ClientAuth{
		AdminID:   adminID,
		SessionID: "sess-test",
		Roles:     []string{"admin"},
	}, zap.NewNop())
}

func fillSendBuffer(c *Client) {
	for i := 0; i < cap(c.send); i++ {
		select {
		case c.send <- []byte("{}"):
		default:
			return
		}
	}
}

// A full send buffer must drop that client without stalling the hub loop:
// later registrations and broadcasts still go through.
func TestHubSurvivesSlowConsumer(t *testing.T) {
	hub := NewHub(nil, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	slow := newTestClient(hub, 1)
	hub.Register <- slow

	fillSendBuffer(slow)
	hub.PushNotification(nil, map[string]interface{}{"message": "hello"})

	second := newTestClient(hub, 2)
	select {
	case hub.Register <- second:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting registrations after a slow-consumer broadcast")
	}

	select {
	case <-slow.ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("slow consumer was not closed")
	}

	// Delivery to the dropped client must not panic or block.
	hub.PushNotification([]int64{1}, map[string]interface{}{"message": "again"})

	select {
	case msg := <-second.send:
		if len(msg) == 0 {
			t.Fatal("expected a payload on the healthy client")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("healthy client never received its connected event")
	}
}

func TestClientCloseIdempotent(t *testing.T) {
	hub := NewHub(nil, nil, zap.NewNop())
	c := newTestClient(hub, 7)

	c.Close()
	c.Close()

	select {
	case <-c.ctx.Done():
	default:
		t.Fatal("expected client context to be canceled")
	}

	// A send after close must not panic.
	c.SendMessage(NewMessage(EventPong, nil))
}
