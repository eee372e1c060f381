package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/notify"
	"github.com/shenikar/mineguard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type received struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

func newTestHub(t *testing.T) (*Hub, *mocks.MockHazardService, *httptest.Server) {
	ctrl := gomock.NewController(t)
	setter := mocks.NewMockHazardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	hub := NewHub(logger, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", hub.ServeWS(setter))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return hub, setter, server
}

func dial(t *testing.T, hub *Hub, server *httptest.Server) *websocket.Conn {
	t.Helper()
	before := hub.Count()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	welcome := readEvent(t, conn)
	require.Equal(t, eventResponse, welcome.Event)
	assert.Equal(t, "Connected to MineGuard Backend", welcome.Data["data"])
	require.Eventually(t, func() bool { return hub.Count() == before+1 }, time.Second, 10*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]any{"event": event, "data": data}))
}

func TestHub_PublishReachesAllSessions(t *testing.T) {
	// Подготовка
	hub, _, server := newTestHub(t)
	first := dial(t, hub, server)
	second := dial(t, hub, server)

	// Действие
	err := hub.Publish(context.Background(), notify.NewEvent(notify.EventNewHazard, map[string]string{"type": "Fire"}))

	// Проверки
	require.NoError(t, err)
	for _, conn := range []*websocket.Conn{first, second} {
		msg := readEvent(t, conn)
		assert.Equal(t, notify.EventNewHazard, msg.Event)
		assert.Equal(t, "Fire", msg.Data["type"])
	}
}

func TestHub_SupervisorJoinIsBroadcast(t *testing.T) {
	// Подготовка
	hub, _, server := newTestHub(t)
	supervisor := dial(t, hub, server)
	observer := dial(t, hub, server)

	// Действие
	send(t, supervisor, actionSupervisorJoin, map[string]string{"supervisor_id": "S-17"})

	// Проверки
	for _, conn := range []*websocket.Conn{supervisor, observer} {
		msg := readEvent(t, conn)
		assert.Equal(t, notify.EventSupervisorJoined, msg.Event)
		assert.Equal(t, "Supervisor S-17 connected", msg.Data["message"])
	}
}

func TestHub_ActionsSetStatus(t *testing.T) {
	tests := []struct {
		action string
		status models.HazardStatus
	}{
		{actionAcknowledge, models.StatusAcknowledged},
		{actionEscalate, models.StatusEscalated},
		{actionResolve, models.StatusResolved},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			// Подготовка
			hub, setter, server := newTestHub(t)
			conn := dial(t, hub, server)
			id := uuid.New()
			done := make(chan struct{})

			// Ожидания
			setter.EXPECT().
				SetStatus(gomock.Any(), id, string(tt.status)).
				DoAndReturn(func(context.Context, uuid.UUID, string) (*models.Hazard, error) {
					close(done)
					return &models.Hazard{ID: id, Status: tt.status}, nil
				}).
				Times(1)

			// Действие
			send(t, conn, tt.action, map[string]string{"hazard_id": id.String()})

			// Проверки
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("SetStatus was not called")
			}
		})
	}
}

func TestHub_ActionErrors(t *testing.T) {
	// Подготовка
	hub, setter, server := newTestHub(t)
	conn := dial(t, hub, server)
	missing := uuid.New()

	// Ожидания
	setter.EXPECT().
		SetStatus(gomock.Any(), missing, string(models.StatusResolved)).
		Return(nil, models.ErrHazardNotFound).
		Times(1)

	// Действие и проверки: ошибки возвращаются только отправителю
	send(t, conn, actionAcknowledge, map[string]string{"hazard_id": "not-a-uuid"})
	msg := readEvent(t, conn)
	assert.Equal(t, eventError, msg.Event)
	assert.Equal(t, "invalid hazard_id", msg.Data["error"])

	send(t, conn, "dance", nil)
	msg = readEvent(t, conn)
	assert.Equal(t, eventError, msg.Event)
	assert.Contains(t, msg.Data["error"], "unknown action")

	send(t, conn, actionResolve, map[string]string{"hazard_id": missing.String()})
	msg = readEvent(t, conn)
	assert.Equal(t, eventError, msg.Event)
	assert.Equal(t, "hazard not found", msg.Data["error"])
}

func TestHub_DisconnectBroadcastsSupervisorLeft(t *testing.T) {
	// Подготовка
	hub, _, server := newTestHub(t)
	leaving := dial(t, hub, server)
	observer := dial(t, hub, server)

	// Действие
	require.NoError(t, leaving.Close())

	// Проверки
	msg := readEvent(t, observer)
	assert.Equal(t, notify.EventSupervisorLeft, msg.Event)
	assert.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestHub_DisconnectNamesJoinedSupervisor(t *testing.T) {
	// Подготовка
	hub, _, server := newTestHub(t)
	leaving := dial(t, hub, server)
	observer := dial(t, hub, server)

	send(t, leaving, actionSupervisorJoin, map[string]string{"supervisor_id": "S-42"})
	joined := readEvent(t, observer)
	require.Equal(t, notify.EventSupervisorJoined, joined.Event)

	// Действие
	require.NoError(t, leaving.Close())

	// Проверки
	msg := readEvent(t, observer)
	assert.Equal(t, notify.EventSupervisorLeft, msg.Event)
	assert.Equal(t, "Supervisor S-42 disconnected", msg.Data["message"])
	assert.Equal(t, "S-42", msg.Data["supervisor_id"])
}

func TestHub_DropsSlowSession(t *testing.T) {
	// Подготовка: сессия без write pump с буфером на одно сообщение
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger, nil)
	slow := &session{id: "slow", send: make(chan []byte, 1)}
	hub.register(slow)
	ctx := context.Background()

	// Действие
	require.NoError(t, hub.Publish(ctx, notify.NewEvent(notify.EventNewHazard, nil)))
	require.NoError(t, hub.Publish(ctx, notify.NewEvent(notify.EventHazardUpdated, nil)))

	// Проверки: первое сообщение доставлено, затем канал закрыт
	assert.Equal(t, 0, hub.Count())
	first, ok := <-slow.send
	require.True(t, ok)
	var event notify.Event
	require.NoError(t, json.Unmarshal(first, &event))
	assert.Equal(t, notify.EventNewHazard, event.Name)
	_, ok = <-slow.send
	assert.False(t, ok)
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger, []string{"https://control.mine.local"})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", hub.ServeWS(nil))
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	header := map[string][]string{"Origin": {"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 403, resp.StatusCode)
}
