package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"ShopPulse/internal/usecase"
	"ShopPulse/pkg/logger"
)

const (
	wsWriteWait    = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type unreadPush struct {
	UnreadCount int `json:"unreadCount"`
}

// WSHandler pushes the unread count to connected clients. A fresh count is
// sent on connect and after every read-state change signal; clients that need
// the full feed re-fetch it over the REST endpoint.
type WSHandler struct {
	notifications *usecase.NotificationUseCase
	logger        *logger.Logger
}

func NewWSHandler(notifications *usecase.NotificationUseCase, log *logger.Logger) *WSHandler {
	return &WSHandler{notifications: notifications, logger: log}
}

func (h *WSHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/notifications", h.Notifications)
}

func (h *WSHandler) Notifications(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	signals, cancel, err := h.notifications.Subscribe(ctx)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer cancel()
	defer conn.Close()

	// Reader exists only to observe the close handshake.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.pushCount(ctx, conn); err != nil {
		return nil
	}

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		case _, ok := <-signals:
			if !ok {
				return nil
			}
			if err := h.pushCount(ctx, conn); err != nil {
				return nil
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
			// Periodic re-push bounds convergence when a signal was missed.
			if err := h.pushCount(ctx, conn); err != nil {
				return nil
			}
		}
	}
}

func (h *WSHandler) pushCount(ctx context.Context, conn *websocket.Conn) error {
	count, err := h.notifications.UnreadCount(ctx)
	if err != nil {
		h.logger.Warn("failed to compute unread count for push", logger.Error(err))
		return nil
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(unreadPush{UnreadCount: count})
}
