package handler

import (
	"errors"

	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/service"
	"github.com/raflytch/skillorbit-server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatService domain.ChatService
}

func NewChatHandler(chatService domain.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Reply(c *fiber.Ctx) error {
	var req domain.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}
	if err := validateRequest(&req); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	reply, err := h.chatService.Reply(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return response.UnprocessableEntity(c, "message is required")
		}
		return response.InternalError(c, err.Error())
	}

	return response.JSON(c, reply)
}
