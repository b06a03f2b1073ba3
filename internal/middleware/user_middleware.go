package middleware

import (
	"strings"

	"github.com/raflytch/skillorbit-server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const (
	UserIDContextKey = "user_id"
	maxUserIDLength  = 64
)

// UserMiddleware resolves the caller-supplied user id from the :user_id path
// parameter. There is no authentication; the id only scopes stored progress.
type UserMiddleware struct{}

func NewUserMiddleware() *UserMiddleware {
	return &UserMiddleware{}
}

func (m *UserMiddleware) RequireUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Params("user_id"))
		if userID == "" {
			return response.UnprocessableEntity(c, "user_id is required")
		}
		if len(userID) > maxUserIDLength {
			return response.UnprocessableEntity(c, "user_id must be at most 64 characters")
		}
		if strings.ContainsAny(userID, "/\\") {
			return response.UnprocessableEntity(c, "user_id contains invalid characters")
		}

		c.Locals(UserIDContextKey, userID)
		return c.Next()
	}
}

func GetUserIDFromContext(c *fiber.Ctx) string {
	userID, ok := c.Locals(UserIDContextKey).(string)
	if !ok {
		return ""
	}
	return userID
}
