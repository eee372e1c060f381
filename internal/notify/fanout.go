package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/mineguard/internal/metrics"
)

type sink struct {
	name      string
	publisher Publisher
}

// Fanout рассылает событие во все подключенные каналы.
// Ошибка одного канала не мешает доставке в остальные.
type Fanout struct {
	sinks []sink
}

// NewFanout создает пустой Fanout
func NewFanout() *Fanout {
	return &Fanout{}
}

// Add добавляет канал доставки. Не потокобезопасен: вызывается только при старте
func (f *Fanout) Add(name string, publisher Publisher) *Fanout {
	f.sinks = append(f.sinks, sink{name: name, publisher: publisher})
	return f
}

// Publish отправляет событие во все каналы и объединяет ошибки
func (f *Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.publisher.Publish(ctx, event); err != nil {
			metrics.NotificationsFailed.WithLabelValues(s.name).Inc()
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}
