package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/domain"
)

const requiredSkillLevel = 4

var radarLabels = []string{"Core Skills", "Advanced Skills", "Emerging Tech", "Projects", "Communication"}

type GapAnalyzer struct {
	catalog *catalog.Catalog
	rnd     Random
}

func NewGapAnalyzer(c *catalog.Catalog, rnd Random) *GapAnalyzer {
	return &GapAnalyzer{catalog: c, rnd: rnd}
}

// Analyze compares extracted skills against the profile of targetRole. Unknown
// roles use the catalog default profile, but targetRole is echoed unchanged in
// the insights.
func (g *GapAnalyzer) Analyze(extracted []string, targetRole string) *domain.GapAnalysis {
	profile, _ := g.catalog.Profile(targetRole)
	required := profile.All()

	has := make(map[string]bool, len(extracted))
	for _, s := range extracted {
		has[s] = true
	}

	matched := 0
	missing := make([]string, 0)
	gaps := make([]domain.SkillGap, 0, len(required))
	for _, skill := range required {
		gap := domain.SkillGap{
			Skill:         skill,
			Status:        domain.SkillMissing,
			Importance:    "medium",
			RequiredLevel: requiredSkillLevel,
		}
		if slices.Contains(profile.Tier(domain.TierCore), skill) {
			gap.Importance = "high"
		}
		if has[skill] {
			matched++
			gap.Status = domain.SkillMatched
			gap.Current = 100
		} else {
			missing = append(missing, skill)
		}
		gaps = append(gaps, gap)
	}

	score := percent(matched, len(required))

	scores := make([]int, 0, len(radarLabels))
	for _, tier := range domain.SkillTiers {
		scores = append(scores, tierScore(extracted, profile.Tier(tier)))
	}
	// Projects and Communication are not derived from the resume.
	scores = append(scores, 60+g.rnd.IntN(31), 70+g.rnd.IntN(26))
	radar := domain.RadarData{Labels: slices.Clone(radarLabels), Scores: scores}

	focus := "Great! You have all core skills"
	if len(missing) > 0 {
		focus = "Focus on learning: " + strings.Join(missing[:min(3, len(missing))], ", ")
	}

	return &domain.GapAnalysis{
		Role:          targetRole,
		TotalRequired: len(required),
		MatchedCount:  matched,
		Score:         score,
		MissingSkills: missing,
		SkillGaps:     gaps,
		Radar:         radar,
		Insights: []string{
			fmt.Sprintf("You have %d out of %d required skills for %s", matched, len(required), targetRole),
			focus,
			fmt.Sprintf("Your future-proofing score is %d/100", score),
		},
	}
}

// tierScore counts extracted skills that belong to tier.
func tierScore(extracted, tier []string) int {
	n := 0
	for _, s := range extracted {
		if slices.Contains(tier, s) {
			n++
		}
	}
	return percent(n, len(tier))
}

// percent is floor(part/total*100) capped at 100, or 0 for an empty total.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return min(part*100/total, 100)
}
