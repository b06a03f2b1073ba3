package response

import "github.com/gofiber/fiber/v2"

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SoftErrorResponse is the 200 payload returned for expected failures the
// client renders inline, such as an unreadable resume.
type SoftErrorResponse struct {
	Error string `json:"error"`
}

func Success(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// JSON writes payload as the whole response body with status 200.
func JSON(c *fiber.Ctx, payload interface{}) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

func Created(c *fiber.Ctx, payload interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(payload)
}

func SoftError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(SoftErrorResponse{Error: message})
}

func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func RequestEntityTooLarge(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusRequestEntityTooLarge, message)
}

func UnprocessableEntity(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnprocessableEntity, message)
}

func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
