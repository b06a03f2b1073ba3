package service

import (
	"strings"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/domain"
)

const (
	coursesPerSkill    = 2
	courseSkillLimit   = 3
	projectSkillLimit  = 6
	projectDifficulty  = "Intermediate"
	projectDuration    = "2-3 weeks"
	githubTopicsPrefix = "https://github.com/topics/"
)

type platformTemplate struct {
	name     string
	verb     string
	duration string
	rating   float64
	host     string
}

var platformTemplates = []platformTemplate{
	{name: "Coursera", verb: "Master", duration: "4-6 weeks", rating: 4.7, host: "coursera.org"},
	{name: "Udemy", verb: "Complete", duration: "8-12 hours", rating: 4.6, host: "udemy.com"},
}

type RecommendationEngine struct {
	catalog *catalog.Catalog
}

func NewRecommendationEngine(c *catalog.Catalog) *RecommendationEngine {
	return &RecommendationEngine{catalog: c}
}

// Courses returns two courses for each of the first three missing skills.
// Catalog courses teaching the skill fill the slots first, platform search
// templates fill the rest.
func (r *RecommendationEngine) Courses(missing []string) []domain.CourseRecommendation {
	skills := missing[:min(courseSkillLimit, len(missing))]
	out := make([]domain.CourseRecommendation, 0, len(skills)*coursesPerSkill)

	for _, skill := range skills {
		slots := 0
		for _, course := range r.catalog.CoursesForSkill(skill) {
			if slots == coursesPerSkill {
				break
			}
			out = append(out, domain.CourseRecommendation{
				CourseID:       course.ID,
				Title:          course.Title,
				Provider:       course.Provider,
				Duration:       course.Duration,
				Rating:         course.Rating,
				MatchingSkills: []string{skill},
				URL:            course.URL,
			})
			slots++
		}
		for _, p := range platformTemplates[:coursesPerSkill-slots] {
			out = append(out, domain.CourseRecommendation{
				Title:          p.verb + " " + skill,
				Provider:       p.name,
				Duration:       p.duration,
				Rating:         p.rating,
				MatchingSkills: []string{skill},
				URL:            "https://www." + p.host + "/search?query=" + strings.ReplaceAll(skill, " ", "%20"),
			})
		}
	}
	return out
}

// Projects returns one project for each of the first six missing skills.
func (r *RecommendationEngine) Projects(missing []string) []domain.ProjectRecommendation {
	skills := missing[:min(projectSkillLimit, len(missing))]
	out := make([]domain.ProjectRecommendation, 0, len(skills))

	for _, skill := range skills {
		topic := githubTopicsPrefix + strings.ReplaceAll(strings.ToLower(skill), " ", "-")

		if known := r.catalog.ProjectsForSkill(skill); len(known) > 0 {
			p := known[0]
			out = append(out, domain.ProjectRecommendation{
				Title:         p.Title,
				Difficulty:    p.Difficulty,
				Duration:      p.Duration,
				Description:   p.Description,
				SkillsLearned: []string{skill},
				TargetSkill:   skill,
				GithubExample: topic,
				URL:           p.URL,
			})
			continue
		}

		out = append(out, domain.ProjectRecommendation{
			Title:         "Build a " + skill + " Project",
			Difficulty:    projectDifficulty,
			Duration:      projectDuration,
			Description:   "A hands-on project to master " + skill + " through practical implementation",
			SkillsLearned: []string{skill},
			TargetSkill:   skill,
			GithubExample: topic,
		})
	}
	return out
}
