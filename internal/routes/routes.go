package routes

import (
	"github.com/raflytch/skillorbit-server/internal/handler"
	"github.com/raflytch/skillorbit-server/internal/middleware"
	"github.com/raflytch/skillorbit-server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Analysis  *handler.AnalysisHandler
	Interview *handler.InterviewHandler
	Progress  *handler.ProgressHandler
	Chat      *handler.ChatHandler
	Catalog   *handler.CatalogHandler
}

type Middlewares struct {
	User *middleware.UserMiddleware
}

func Setup(app *fiber.App, handlers Handlers, middlewares Middlewares) {
	app.Get("/", root)
	app.Get("/health", healthCheck)

	api := app.Group("/api")

	setupAnalysisRoutes(api, handlers.Analysis)
	setupInterviewRoutes(api, handlers.Interview)
	setupCatalogRoutes(api, handlers.Catalog, handlers.Chat)
	setupProgressRoutes(api, handlers.Progress, middlewares.User)

	app.Use(notFound)
}

func root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "SkillOrbit Backend is Running!",
	})
}

func healthCheck(c *fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, "server is running", nil)
}

func notFound(c *fiber.Ctx) error {
	return response.NotFound(c, "route not found")
}
