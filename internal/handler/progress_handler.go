package handler

import (
	"errors"
	"fmt"
	"log"

	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/middleware"
	"github.com/raflytch/skillorbit-server/internal/service"
	"github.com/raflytch/skillorbit-server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	progressService domain.ProgressService
	reportService   domain.ReportService
}

func NewProgressHandler(progressService domain.ProgressService, reportService domain.ReportService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		reportService:   reportService,
	}
}

func (h *ProgressHandler) Dashboard(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)

	dashboard, err := h.progressService.Dashboard(c.UserContext(), userID)
	if err != nil {
		log.Printf("failed to build dashboard for user %s: %v", userID, err)
		return response.InternalError(c, "failed to load dashboard")
	}

	return response.JSON(c, dashboard)
}

func (h *ProgressHandler) Analyses(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)

	analyses, err := h.progressService.UserAnalyses(c.UserContext(), userID)
	if err != nil {
		log.Printf("failed to load analyses for user %s: %v", userID, err)
		analyses = []domain.AnalysisRecord{}
	}

	return response.JSON(c, fiber.Map{"user_id": userID, "analyses": analyses})
}

func (h *ProgressHandler) Interviews(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)

	interviews, err := h.progressService.UserInterviews(c.UserContext(), userID)
	if err != nil {
		log.Printf("failed to load interviews for user %s: %v", userID, err)
		interviews = []domain.InterviewRecord{}
	}

	return response.JSON(c, fiber.Map{"user_id": userID, "interviews": interviews})
}

func (h *ProgressHandler) Courses(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)

	courses, err := h.progressService.UserCourses(c.UserContext(), userID)
	if err != nil {
		log.Printf("failed to load courses for user %s: %v", userID, err)
		courses = []domain.CourseProgress{}
	}

	return response.JSON(c, fiber.Map{"user_id": userID, "courses": courses})
}

func (h *ProgressHandler) Achievements(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)

	achievements, err := h.progressService.UserAchievements(c.UserContext(), userID)
	if err != nil {
		log.Printf("failed to load achievements for user %s: %v", userID, err)
		achievements = []domain.Achievement{}
	}

	return response.JSON(c, fiber.Map{"user_id": userID, "achievements": achievements})
}

func (h *ProgressHandler) EnrollCourse(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)

	var req domain.EnrollCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}
	if err := validateRequest(&req); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	course, err := h.progressService.EnrollCourse(c.UserContext(), userID, &req)
	if err != nil {
		log.Printf("failed to enroll user %s: %v", userID, err)
		return response.SoftError(c, "Could not save course enrollment")
	}

	return response.Created(c, course)
}

func (h *ProgressHandler) UpdateCourse(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)
	courseID := c.Params("course_id")

	var req domain.UpdateCourseProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}
	if err := validateRequest(&req); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	course, err := h.progressService.UpdateCourseProgress(c.UserContext(), userID, courseID, &req)
	if err != nil {
		log.Printf("failed to update course %s for user %s: %v", courseID, userID, err)
		return response.SoftError(c, "Could not update course progress")
	}
	if course == nil {
		return response.NotFound(c, "course not found")
	}

	return response.JSON(c, course)
}

func (h *ProgressHandler) Report(c *fiber.Ctx) error {
	userID := middleware.GetUserIDFromContext(c)
	analysisID := c.Params("analysis_id")

	pdfBytes, err := h.reportService.AnalysisReport(c.UserContext(), userID, analysisID)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			return response.NotFound(c, "analysis not found")
		}
		return response.InternalError(c, err.Error())
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=skillorbit-analysis-%s.pdf", analysisID))

	return c.Send(pdfBytes)
}
