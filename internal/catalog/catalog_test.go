package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRolesAreWellFormed(t *testing.T) {
	c := Default()
	require.Contains(t, c.Roles, c.DefaultRole)

	for name, profile := range c.Roles {
		for _, tier := range [][]string{profile.Core, profile.Advanced, profile.Emerging} {
			assert.NotEmpty(t, tier, "role %s has an empty tier", name)
			seen := make(map[string]bool)
			for _, skill := range tier {
				assert.False(t, seen[skill], "role %s repeats %s in a tier", name, skill)
				seen[skill] = true
			}
		}
	}
}

func TestProfileFallsBackToDefaultRole(t *testing.T) {
	c := Default()

	profile, role := c.Profile("Astronaut")
	assert.Equal(t, DefaultRole, role)
	assert.Equal(t, c.Roles[DefaultRole], profile)

	_, role = c.Profile("Cloud Architect")
	assert.Equal(t, "Cloud Architect", role)
}

func TestQuestionBankFallsBackToDefaultRole(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Questions[DefaultRole], c.QuestionBank("Astronaut"))
	assert.Len(t, c.QuestionBank("AI Engineer"), 5)
}

func TestCoursesForSkillIsCaseInsensitive(t *testing.T) {
	c := Default()

	got := c.CoursesForSkill("pytorch")
	require.Len(t, got, 2)
	assert.Equal(t, "deep-learning-specialization", got[0].ID)
	assert.Equal(t, "pytorch-deep-learning", got[1].ID)

	assert.Empty(t, c.CoursesForSkill("Edge AI"))
}

func TestCourseIDsAreUnique(t *testing.T) {
	c := Default()
	seen := make(map[string]bool)
	for _, course := range c.Courses {
		require.NotEmpty(t, course.ID)
		assert.False(t, seen[course.ID], "duplicate course id %s", course.ID)
		seen[course.ID] = true
	}

	course, ok := c.CourseByID("mlops-specialization")
	require.True(t, ok)
	assert.Equal(t, "DeepLearning.AI", course.Provider)
}

func TestRoleNamesSorted(t *testing.T) {
	assert.Equal(t, []string{
		"AI Engineer",
		"Cloud Architect",
		"Data Scientist",
		"Full Stack Developer",
		"Product Manager",
	}, Default().RoleNames())
}
