package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSPublisher публикует события в шину NATS, subject: <prefix>.<event>
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher создает NATSPublisher поверх существующего соединения
func NewNATSPublisher(conn *nats.Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject возвращает subject для события
func (p *NATSPublisher) Subject(eventName string) string {
	return fmt.Sprintf("%s.%s", p.prefix, eventName)
}

// Publish отправляет событие в NATS
func (p *NATSPublisher) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for NATS: %w", err)
	}
	if err := p.conn.Publish(p.Subject(event.Name), data); err != nil {
		return fmt.Errorf("failed to publish %s to NATS: %w", event.Name, err)
	}
	return nil
}
