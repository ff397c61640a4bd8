// Package handlers carries the request surface: HTTP routes for message
// mutations and a websocket gateway streaming broadcast topics to clients.
package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"concord/auth"
	"concord/domain"
	"concord/errors"
	"concord/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type MessageHandler struct {
	svc services.IMessageService
	log *slog.Logger
}

func NewMessageHandler(svc services.IMessageService, log *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: log}
}

func (h *MessageHandler) Register(app fiber.Router) {
	app.Post("/servers/:serverId/channels/:channelId/messages", h.CreateChannelMessage)
	app.Get("/servers/:serverId/channels/:channelId/messages", h.ListChannelMessages)
	app.Patch("/servers/:serverId/channels/:channelId/messages/:messageId", h.EditChannelMessage)
	app.Delete("/servers/:serverId/channels/:channelId/messages/:messageId", h.DeleteChannelMessage)

	app.Post("/conversations/:conversationId/messages", h.CreateDirectMessage)
	app.Get("/conversations/:conversationId/messages", h.ListDirectMessages)
	app.Patch("/conversations/:conversationId/messages/:messageId", h.EditDirectMessage)
	app.Delete("/conversations/:conversationId/messages/:messageId", h.DeleteDirectMessage)
}

type messageBody struct {
	Content       string  `json:"content"`
	AttachmentURL *string `json:"attachmentUrl"`
}

func (h *MessageHandler) CreateChannelMessage(c *fiber.Ctx) error {
	return h.create(c, domain.ChannelScope(c.Params("serverId"), c.Params("channelId")))
}

func (h *MessageHandler) CreateDirectMessage(c *fiber.Ctx) error {
	return h.create(c, domain.ConversationScope(c.Params("conversationId")))
}

func (h *MessageHandler) EditChannelMessage(c *fiber.Ctx) error {
	return h.edit(c, domain.ChannelScope(c.Params("serverId"), c.Params("channelId")))
}

func (h *MessageHandler) EditDirectMessage(c *fiber.Ctx) error {
	return h.edit(c, domain.ConversationScope(c.Params("conversationId")))
}

func (h *MessageHandler) DeleteChannelMessage(c *fiber.Ctx) error {
	return h.delete(c, domain.ChannelScope(c.Params("serverId"), c.Params("channelId")))
}

func (h *MessageHandler) DeleteDirectMessage(c *fiber.Ctx) error {
	return h.delete(c, domain.ConversationScope(c.Params("conversationId")))
}

func (h *MessageHandler) ListChannelMessages(c *fiber.Ctx) error {
	return h.list(c, domain.ChannelScope(c.Params("serverId"), c.Params("channelId")))
}

func (h *MessageHandler) ListDirectMessages(c *fiber.Ctx) error {
	return h.list(c, domain.ConversationScope(c.Params("conversationId")))
}

func (h *MessageHandler) create(c *fiber.Ctx, scope domain.ScopeRef) error {
	var body messageBody
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, fmt.Errorf("%w: malformed body", errors.ErrBadRequest))
	}
	message, err := h.svc.CreateMessage(c.UserContext(), domain.CreateMessageCommand{
		Scope:         scope,
		ProfileID:     auth.ProfileID(c),
		Content:       body.Content,
		AttachmentURL: body.AttachmentURL,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

func (h *MessageHandler) edit(c *fiber.Ctx, scope domain.ScopeRef) error {
	messageID, err := parseMessageID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var body messageBody
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, fmt.Errorf("%w: malformed body", errors.ErrBadRequest))
	}
	message, err := h.svc.EditMessage(c.UserContext(), domain.EditMessageCommand{
		Scope:     scope,
		ProfileID: auth.ProfileID(c),
		MessageID: messageID,
		Content:   body.Content,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

func (h *MessageHandler) delete(c *fiber.Ctx, scope domain.ScopeRef) error {
	messageID, err := parseMessageID(c)
	if err != nil {
		return h.fail(c, err)
	}
	message, err := h.svc.DeleteMessage(c.UserContext(), domain.DeleteMessageCommand{
		Scope:     scope,
		ProfileID: auth.ProfileID(c),
		MessageID: messageID,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

func (h *MessageHandler) list(c *fiber.Ctx, scope domain.ScopeRef) error {
	var cursor *string
	if raw := c.Query("cursor"); raw != "" {
		cursor = lo.ToPtr(raw)
	}
	messages, next, err := h.svc.ListMessages(c.UserContext(), domain.ListMessagesCommand{
		Scope:     scope,
		ProfileID: auth.ProfileID(c),
		Cursor:    cursor,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages, "nextCursor": next})
}

func parseMessageID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid message id", errors.ErrBadRequest)
	}
	return id, nil
}

// fail maps a pipeline failure to its (status, errorKind) pair. Raw
// collaborator errors never reach the wire; anything uncategorized reads as a
// generic internal failure.
func (h *MessageHandler) fail(c *fiber.Ctx, err error) error {
	status, kind := classify(err)
	if status == fiber.StatusInternalServerError {
		h.log.Error("Request failed", "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": kind})
}

func classify(err error) (int, string) {
	switch {
	case stderrors.Is(err, errors.ErrBadRequest):
		return fiber.StatusBadRequest, "bad_request"
	case stderrors.Is(err, errors.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "unauthenticated"
	case stderrors.Is(err, errors.ErrUnauthorized):
		return fiber.StatusUnauthorized, "unauthorized"
	case stderrors.Is(err, errors.ErrScopeNotFound):
		return fiber.StatusNotFound, "scope_not_found"
	case stderrors.Is(err, errors.ErrMessageNotFound):
		return fiber.StatusNotFound, "message_not_found"
	case stderrors.Is(err, errors.ErrInvalidState):
		return fiber.StatusConflict, "invalid_state"
	case stderrors.Is(err, errors.ErrStorage):
		return fiber.StatusInternalServerError, "storage_failure"
	default:
		return fiber.StatusInternalServerError, "internal"
	}
}
