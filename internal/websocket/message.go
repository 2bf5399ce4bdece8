// internal/websocket/message.go
package websocket

import (
	"encoding/json"
	"time"
)

// Event types pushed over the admin feed.
const (
	EventConnected         = "connected"
	EventNotification      = "notification"
	EventNotificationCount = "notification_count"
	EventPing              = "ping"
	EventPong              = "pong"
	EventError             = "error"
)

type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewMessage(eventType string, data interface{}) *Message {
	return &Message{Type: eventType, Data: data, Timestamp: time.Now()}
}

func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ParseMessage(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
