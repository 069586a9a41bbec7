package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/paintconnect/storefront/internal/logging"
	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/mykafka"
	"github.com/paintconnect/storefront/internal/service"
	"github.com/paintconnect/storefront/internal/util"
)

type MessageHandler struct {
	Svc      *service.MessageService
	Producer *mykafka.Producer
}

func (h *MessageHandler) CreateMessage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "messages.create")

	var req struct {
		Name    string  `json:"name"`
		Email   *string `json:"email"`
		Phone   string  `json:"phone"`
		Message string  `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_message_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	created, err := h.Svc.CreateContactMessage(ctx, &msg)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_message_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "name, phone and message required")
		}
		l.Error("create_message_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save message")
	}

	publish(c, h.Producer, "message_events", created.ID.String(), map[string]any{
		"type":       "message_created",
		"message_id": created.ID.String(),
	})

	l.Info("create_message_success", "message_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "messages.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), 50)
	offset, limit := util.Calculate(page, size)

	messages, err := h.Svc.ListContactMessages(ctx, offset, limit)
	if err != nil {
		l.Error("list_messages_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list messages")
	}

	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "messages.mark_read")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("mark_read_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.MarkRead(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("mark_read_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "message not found")
		}
		l.Error("mark_read_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update message")
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "messages.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_message_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeleteContactMessage(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_message_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "message not found")
		}
		l.Error("delete_message_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete message")
	}

	return c.NoContent(http.StatusNoContent)
}
