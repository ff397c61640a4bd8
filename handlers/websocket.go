package handlers

import (
	"context"
	"log/slog"
	"time"

	"concord/auth"
	"concord/broadcast"
	"concord/domain"
	"concord/services"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// GatewayHandler streams a scope's broadcast topics to a websocket client.
// It sits entirely on the subscriber side of the transport: membership is
// checked once at connect time, then payloads are forwarded verbatim.
type GatewayHandler struct {
	subscriber broadcast.ISubscriber
	resolver   services.IMembershipResolver
	log        *slog.Logger
}

func NewGatewayHandler(subscriber broadcast.ISubscriber, resolver services.IMembershipResolver, log *slog.Logger) *GatewayHandler {
	return &GatewayHandler{subscriber: subscriber, resolver: resolver, log: log}
}

func (h *GatewayHandler) Register(app fiber.Router) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/servers/:serverId/channels/:channelId", websocket.New(func(conn *websocket.Conn) {
		h.stream(conn, domain.ChannelScope(conn.Params("serverId"), conn.Params("channelId")))
	}))
	app.Get("/ws/conversations/:conversationId", websocket.New(func(conn *websocket.Conn) {
		h.stream(conn, domain.ConversationScope(conn.Params("conversationId")))
	}))
}

func (h *GatewayHandler) stream(conn *websocket.Conn, scope domain.ScopeRef) {
	defer conn.Close()

	profileID, _ := conn.Locals(auth.ProfileIDKey).(string)
	if _, err := h.resolver.Resolve(context.Background(), profileID, scope); err != nil {
		_ = conn.WriteJSON(fiber.Map{"error": "scope_not_found"})
		return
	}

	events := make(chan []byte, 256)
	forward := func(payload []byte) {
		select {
		case events <- payload:
		default:
			h.log.Debug("Slow subscriber, dropping event", "scope", scope.ID())
		}
	}

	created, err := h.subscriber.Subscribe(broadcast.TopicFor(scope, broadcast.EventCreated), forward)
	if err != nil {
		h.log.Error("Subscribe failed", "scope", scope.ID(), "error", err)
		return
	}
	defer created()
	updated, err := h.subscriber.Subscribe(broadcast.TopicFor(scope, broadcast.EventUpdated), forward)
	if err != nil {
		h.log.Error("Subscribe failed", "scope", scope.ID(), "error", err)
		return
	}
	defer updated()

	// Reader goroutine only watches for the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case payload := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
