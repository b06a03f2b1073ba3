package routes

import (
	"github.com/raflytch/skillorbit-server/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func setupInterviewRoutes(router fiber.Router, h *handler.InterviewHandler) {
	interview := router.Group("/interview")

	interview.Post("/start", h.Start)
	interview.Post("/evaluate", h.Evaluate)
	interview.Post("/complete", h.Complete)
}
