package routes

import (
	"github.com/raflytch/skillorbit-server/internal/handler"
	"github.com/raflytch/skillorbit-server/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func setupProgressRoutes(router fiber.Router, h *handler.ProgressHandler, user *middleware.UserMiddleware) {
	requireUser := user.RequireUserID()

	router.Get("/dashboard/:user_id", requireUser, h.Dashboard)

	users := router.Group("/users")

	users.Get("/:user_id/analyses", requireUser, h.Analyses)
	users.Get("/:user_id/analyses/:analysis_id/report", requireUser, h.Report)
	users.Get("/:user_id/interviews", requireUser, h.Interviews)
	users.Get("/:user_id/courses", requireUser, h.Courses)
	users.Post("/:user_id/courses", requireUser, h.EnrollCourse)
	users.Put("/:user_id/courses/:course_id", requireUser, h.UpdateCourse)
	users.Get("/:user_id/achievements", requireUser, h.Achievements)
}
