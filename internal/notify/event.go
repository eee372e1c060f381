package notify

import (
	"context"
	"time"
)

// Имена событий, которые получают панели диспетчеров и внешние подписчики
const (
	EventNewHazard          = "new-hazard"
	EventStartSimulation    = "start-simulation"
	EventHazardUpdated      = "hazard-updated"
	EventHazardAcknowledged = "hazard-acknowledged"
	EventHazardEscalated    = "hazard-escalated"
	EventHazardResolved     = "hazard-resolved"
	EventSupervisorJoined   = "supervisor-joined"
	EventSupervisorLeft     = "supervisor-left"
)

// Event - событие для рассылки
type Event struct {
	Name      string    `json:"event"`
	Payload   any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent создает событие с текущим временем
func NewEvent(name string, payload any) Event {
	return Event{Name: name, Payload: payload, Timestamp: time.Now().UTC()}
}

// Publisher - интерфейс для публикации событий.
// Доставка best-effort: ошибка только логируется вызывающей стороной.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
