package handler

import (
	"strings"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// Courses lists the course catalog, optionally narrowed to ?skill=.
func (h *CatalogHandler) Courses(c *fiber.Ctx) error {
	skill := strings.TrimSpace(c.Query("skill"))
	courses := h.catalog.Courses
	if skill != "" {
		courses = h.catalog.CoursesForSkill(skill)
	}

	return response.JSON(c, fiber.Map{
		"skill":   skill,
		"courses": courses,
		"total":   len(courses),
	})
}

func (h *CatalogHandler) Roles(c *fiber.Ctx) error {
	names := h.catalog.RoleNames()
	roles := make([]fiber.Map, 0, len(names))
	for _, name := range names {
		roles = append(roles, fiber.Map{
			"role":    name,
			"profile": h.catalog.Roles[name],
		})
	}

	return response.JSON(c, fiber.Map{
		"default_role": h.catalog.DefaultRole,
		"roles":        roles,
	})
}
