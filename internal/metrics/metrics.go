package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mineguard"

var (
	// SensorReadings количество принятых показаний датчиков.
	// Labels: outcome (normal, hazard)
	SensorReadings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sensor_readings_total",
		Help:      "Total sensor readings ingested",
	}, []string{"outcome"})

	// HazardsCreated количество созданных опасностей.
	// Labels: type, severity, source (WORKER, IoT_SENSOR)
	HazardsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hazards_created_total",
		Help:      "Total hazard events created",
	}, []string{"type", "severity", "source"})

	// HazardStatusUpdates количество смен статуса.
	// Labels: status
	HazardStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hazard_status_updates_total",
		Help:      "Total hazard status updates",
	}, []string{"status"})

	// NotificationsFailed неудачные публикации событий.
	// Labels: sink (websocket, webhook, nats)
	NotificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total failed notification deliveries by sink",
	}, []string{"sink"})

	// WebhookDeliveries результат доставки вебхуков.
	// Labels: status (delivered, failed, skipped)
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "webhook",
		Name:      "deliveries_total",
		Help:      "Webhook delivery outcomes",
	}, []string{"status"})

	// WSSessions текущее число подключенных сессий диспетчеров
	WSSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ws",
		Name:      "sessions",
		Help:      "Connected supervisor websocket sessions",
	})

	// AffectedWorkers распределение числа сотрудников в зонах на один расчет.
	// Labels: level (critical, high, medium)
	AffectedWorkers = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "simulation",
		Name:      "affected_workers",
		Help:      "Workers inside a danger zone per simulation request",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
	}, []string{"level"})
)
