package routes

import (
	"github.com/raflytch/skillorbit-server/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func setupAnalysisRoutes(router fiber.Router, h *handler.AnalysisHandler) {
	router.Get("/test", h.Sample)
	router.Post("/analyze", h.Analyze)
}
