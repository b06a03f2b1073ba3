package routes

import (
	"github.com/raflytch/skillorbit-server/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func setupCatalogRoutes(router fiber.Router, h *handler.CatalogHandler, chat *handler.ChatHandler) {
	router.Get("/courses", h.Courses)
	router.Get("/roles", h.Roles)
	router.Post("/chat", chat.Reply)
}
