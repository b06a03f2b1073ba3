// Package catalog holds the static reference data used by the analysis and
// interview services: role skill profiles, the extractor keyword list, the
// course and project catalogs and the interview question bank.
//
// A Catalog is read-only once built and safe for concurrent use.
package catalog

import (
	"sort"
	"strings"

	"github.com/raflytch/skillorbit-server/internal/domain"
)

const DefaultRole = "Data Scientist"

type Catalog struct {
	DefaultRole string
	Roles       map[string]domain.SkillProfile
	Skills      []string
	Courses     []domain.Course
	Projects    map[string][]domain.Project
	Questions   map[string][]domain.InterviewQuestion
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		DefaultRole: DefaultRole,
		Roles:       roleSkills(),
		Skills:      extractorSkills(),
		Courses:     courses(),
		Projects:    projects(),
		Questions:   interviewQuestions(),
	}
}

// Profile returns the skill profile for role, falling back to the default
// role when role is unknown. The second value is the role actually used.
func (c *Catalog) Profile(role string) (domain.SkillProfile, string) {
	if p, ok := c.Roles[role]; ok {
		return p, role
	}
	return c.Roles[c.DefaultRole], c.DefaultRole
}

// QuestionBank returns the questions for role, or the default role's bank.
func (c *Catalog) QuestionBank(role string) []domain.InterviewQuestion {
	if q, ok := c.Questions[role]; ok {
		return q
	}
	return c.Questions[c.DefaultRole]
}

// CoursesForSkill returns catalog courses teaching skill, in catalog order.
// Matching is case-insensitive on the course skill list.
func (c *Catalog) CoursesForSkill(skill string) []domain.Course {
	matched := make([]domain.Course, 0)
	for _, course := range c.Courses {
		for _, s := range course.Skills {
			if strings.EqualFold(s, skill) {
				matched = append(matched, course)
				break
			}
		}
	}
	return matched
}

func (c *Catalog) CourseByID(id string) (domain.Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return domain.Course{}, false
}

func (c *Catalog) ProjectsForSkill(skill string) []domain.Project {
	return c.Projects[skill]
}

// RoleNames returns the known roles sorted by name.
func (c *Catalog) RoleNames() []string {
	names := make([]string, 0, len(c.Roles))
	for name := range c.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
