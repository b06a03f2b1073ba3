package handler

import (
	"errors"

	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/service"
	"github.com/raflytch/skillorbit-server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	interviewService domain.InterviewService
}

func NewInterviewHandler(interviewService domain.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	req := domain.StartInterviewRequest{Difficulty: domain.DifficultyMixed}
	if err := c.BodyParser(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}
	if err := validateRequest(&req); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	session, err := h.interviewService.Start(c.UserContext(), &req)
	if err != nil {
		return response.InternalError(c, err.Error())
	}

	return response.JSON(c, session)
}

func (h *InterviewHandler) Evaluate(c *fiber.Ctx) error {
	var req domain.EvaluateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	evaluation, err := h.interviewService.Evaluate(c.UserContext(), &req)
	if err != nil {
		return response.InternalError(c, err.Error())
	}

	return response.JSON(c, evaluation)
}

func (h *InterviewHandler) Complete(c *fiber.Ctx) error {
	var req domain.CompleteInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}
	if err := validateRequest(&req); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	summary, err := h.interviewService.Complete(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNoAnswers) {
			return response.SoftError(c, "No answers provided")
		}
		return response.InternalError(c, err.Error())
	}

	return response.JSON(c, summary)
}
