package handler

import (
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/service"
	"github.com/raflytch/skillorbit-server/pkg/response"
	"github.com/raflytch/skillorbit-server/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

const extractionFailedMessage = "Could not extract text from PDF"

type AnalysisHandler struct {
	analysisService domain.AnalysisService
	fileValidator   *validator.FileValidator
}

func NewAnalysisHandler(analysisService domain.AnalysisService, maxUploadMB int) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		fileValidator:   validator.ResumeValidator(maxUploadMB),
	}
}

func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.UnprocessableEntity(c, "resume file is required, use form field 'file'")
	}

	if err := h.fileValidator.Validate(file); err != nil {
		if errors.Is(err, validator.ErrFileTooLarge) {
			return response.RequestEntityTooLarge(c, err.Error())
		}
		return response.UnprocessableEntity(c, err.Error())
	}

	var req domain.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid form data")
	}
	if err := validateRequest(&req); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	data, err := readUpload(file)
	if err != nil {
		log.Printf("failed to read upload %s: %v", file.Filename, err)
		return response.SoftError(c, extractionFailedMessage)
	}

	result, err := h.analysisService.AnalyzeDocument(c.UserContext(), &req, &domain.Document{
		FileName: file.Filename,
		Data:     data,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoExtractableText) {
			return response.SoftError(c, extractionFailedMessage)
		}
		return response.InternalError(c, err.Error())
	}

	return response.JSON(c, result)
}

// Sample answers the connectivity probe the web client calls on load.
func (h *AnalysisHandler) Sample(c *fiber.Ctx) error {
	return response.JSON(c, fiber.Map{
		"status":                "success",
		"future_proofing_score": 72,
		"top_skills":            []string{"Python", "Machine Learning", "Docker"},
	})
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
