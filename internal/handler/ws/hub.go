// Package ws рассылает события об опасностях на панели диспетчеров через websocket
// и принимает от них команды подтверждения, эскалации и закрытия.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/mineguard/internal/metrics"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/notify"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// Входящие события от диспетчера
const (
	actionSupervisorJoin = "supervisor-join"
	actionAcknowledge    = "acknowledge-hazard"
	actionEscalate       = "escalate-hazard"
	actionResolve        = "resolve-hazard"

	eventResponse = "response"
	eventError    = "error"
)

var actionStatuses = map[string]models.HazardStatus{
	actionAcknowledge: models.StatusAcknowledged,
	actionEscalate:    models.StatusEscalated,
	actionResolve:     models.StatusResolved,
}

// StatusSetter меняет статус опасности; реализуется сервисом опасностей
type StatusSetter interface {
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Hazard, error)
}

// clientMessage конверт входящего сообщения
type clientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type session struct {
	id   string
	send chan []byte
	// supervisorID пишется и читается только горутиной ServeWS
	supervisorID string
}

// Hub реестр подключенных диспетчеров
type Hub struct {
	mu       sync.RWMutex
	sessions map[*session]struct{}
	logger   *logrus.Logger
	upgrader websocket.Upgrader
}

// NewHub создает hub; пустой allowedOrigins разрешает любой Origin
func NewHub(logger *logrus.Logger, allowedOrigins []string) *Hub {
	h := &Hub{
		sessions: make(map[*session]struct{}),
		logger:   logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
		},
	}
	return h
}

// Count число активных сессий
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Publish рассылает событие всем сессиям. Сессия с переполненным буфером отключается.
func (h *Hub) Publish(_ context.Context, event notify.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ws: failed to marshal event: %w", err)
	}

	h.mu.RLock()
	var slow []*session
	for s := range h.sessions {
		select {
		case s.send <- data:
		default:
			slow = append(slow, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range slow {
		h.logger.WithFields(logrus.Fields{
			"session": s.id,
			"event":   event.Name,
		}).Warn("Dropping slow websocket session")
		h.unregister(s)
	}
	return nil
}

// Close отключает все сессии
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.sessions {
		delete(h.sessions, s)
		close(s.send)
		metrics.WSSessions.Dec()
	}
}

func (h *Hub) register(s *session) {
	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()
	metrics.WSSessions.Inc()
}

// unregister закрывает канал отправки; повторный вызов ничего не делает
func (h *Hub) unregister(s *session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s]; !ok {
		return false
	}
	delete(h.sessions, s)
	close(s.send)
	metrics.WSSessions.Dec()
	return true
}

// ServeWS обработчик подключения диспетчера
func (h *Hub) ServeWS(setter StatusSetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
			return
		}

		s := &session{
			id:   uuid.NewString(),
			send: make(chan []byte, sendBufferSize),
		}
		log := h.logger.WithField("session", s.id)
		log.Info("Websocket client connected")

		h.register(s)
		go h.writePump(conn, s)

		h.reply(s, eventResponse, gin.H{"data": "Connected to MineGuard Backend"})
		h.readPump(c.Request.Context(), conn, s, setter, log)

		if h.unregister(s) {
			log.WithField("supervisor_id", s.supervisorID).Info("Websocket client disconnected")
			message := "Supervisor disconnected"
			if s.supervisorID != "" {
				message = fmt.Sprintf("Supervisor %s disconnected", s.supervisorID)
			}
			_ = h.Publish(c.Request.Context(), notify.NewEvent(notify.EventSupervisorLeft, gin.H{
				"message":       message,
				"supervisor_id": s.supervisorID,
			}))
		}
	}
}

func (h *Hub) readPump(ctx context.Context, conn *websocket.Conn, s *session, setter StatusSetter, log *logrus.Entry) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("Unexpected websocket close")
			}
			return
		}
		h.handleMessage(ctx, s, msg, setter, log)
	}
}

func (h *Hub) handleMessage(ctx context.Context, s *session, msg clientMessage, setter StatusSetter, log *logrus.Entry) {
	log = log.WithField("action", msg.Event)

	if msg.Event == actionSupervisorJoin {
		var data struct {
			SupervisorID string `json:"supervisor_id"`
		}
		_ = json.Unmarshal(msg.Data, &data)
		s.supervisorID = data.SupervisorID
		log.WithField("supervisor_id", data.SupervisorID).Info("Supervisor joined")
		_ = h.Publish(ctx, notify.NewEvent(notify.EventSupervisorJoined, gin.H{
			"message": fmt.Sprintf("Supervisor %s connected", data.SupervisorID),
		}))
		return
	}

	status, ok := actionStatuses[msg.Event]
	if !ok {
		log.Debug("Unknown websocket action")
		h.reply(s, eventError, gin.H{"error": fmt.Sprintf("unknown action %q", msg.Event)})
		return
	}

	var data struct {
		HazardID string `json:"hazard_id"`
	}
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		h.reply(s, eventError, gin.H{"error": "invalid payload"})
		return
	}
	id, err := uuid.Parse(data.HazardID)
	if err != nil {
		h.reply(s, eventError, gin.H{"error": "invalid hazard_id"})
		return
	}

	// Рассылка событий о смене статуса выполняется сервисом
	if _, err := setter.SetStatus(ctx, id, string(status)); err != nil {
		log.WithError(err).WithField("hazard_id", id).Warn("Failed to apply websocket action")
		text := "failed to update hazard"
		if errors.Is(err, models.ErrNotFound) {
			text = "hazard not found"
		}
		h.reply(s, eventError, gin.H{"error": text, "hazard_id": id})
	}
}

// reply отправляет событие только одной сессии
func (h *Hub) reply(s *session, name string, payload any) {
	data, err := json.Marshal(notify.NewEvent(name, payload))
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.sessions[s]; !ok {
		return
	}
	select {
	case s.send <- data:
	default:
	}
}

func (h *Hub) writePump(conn *websocket.Conn, s *session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case data, ok := <-s.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub закрыл канал
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
