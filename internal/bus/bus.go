// Package bus mirrors conversation turns to an external websocket hub.
// Publishing is best effort: a dead hub never blocks the session loop.
package bus

import (
	"encoding/json"
	"time"

	log "log/slog"

	"github.com/gorilla/websocket"
)

type Event struct {
	From      string    `json:"from"`
	Kind      string    `json:"kind"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Bus struct {
	url  string
	conn *websocket.Conn
}

func Dial(url string) (*Bus, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	log.Info("connected to bus", "url", url)
	return &Bus{url: url, conn: conn}, nil
}

// Publish writes one event, reconnecting once if the hub went away.
func (b *Bus) Publish(ev Event) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if err := b.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		if !isClosed(err) {
			return err
		}
		if err := b.reconnect(); err != nil {
			return err
		}
		return b.conn.WriteMessage(websocket.TextMessage, data)
	}
	return nil
}

func (b *Bus) Close() error {
	return b.conn.Close()
}

func (b *Bus) reconnect() error {
	conn, _, err := websocket.DefaultDialer.Dial(b.url, nil)
	if err != nil {
		return err
	}
	b.conn = conn
	log.Info("reconnected to bus", "url", b.url)
	return nil
}

func isClosed(err error) bool {
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure) || websocket.IsUnexpectedCloseError(err)
}
