package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"ShopPulse/internal/domain/models"
	"ShopPulse/internal/usecase"
	xhttp "ShopPulse/pkg/http"
	"ShopPulse/pkg/logger"
)

// NotificationHandler serves the feed and its read mutations.
type NotificationHandler struct {
	notifications *usecase.NotificationUseCase
	logger        *logger.Logger
}

func NewNotificationHandler(notifications *usecase.NotificationUseCase, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: log}
}

func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/notifications")
	g.GET("", h.Feed)
	g.POST("/:id/read", h.MarkRead)
	g.POST("/read-all", h.MarkAllRead)
}

func (h *NotificationHandler) Feed(c echo.Context) error {
	feed, err := h.notifications.Feed(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return xhttp.SuccessResponse(c, feed)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	var req models.MarkReadRequest
	if payload := xhttp.ReadAndValidateRequest(c, &req); payload != nil {
		return xhttp.BadRequestResponse(c, payload)
	}

	if err := h.notifications.MarkRead(c.Request().Context(), req.ID); err != nil {
		return h.respondError(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]string{"id": req.ID, "status": "read"})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notifications.MarkAllRead(c.Request().Context()); err != nil {
		return h.respondError(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "read"})
}

func (h *NotificationHandler) respondError(c echo.Context, err error) error {
	if errors.Is(err, usecase.ErrNoSnapshot) {
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("notification feed is not available yet"))
	}
	h.logger.Error("notification request failed",
		logger.String("path", c.Path()),
		logger.Error(err))
	return xhttp.InternalServerErrorResponse(c)
}
