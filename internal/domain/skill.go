package domain

type SkillTier string

const (
	TierCore     SkillTier = "core"
	TierAdvanced SkillTier = "advanced"
	TierEmerging SkillTier = "emerging"
)

// SkillTiers lists the tiers in requirement order.
var SkillTiers = []SkillTier{TierCore, TierAdvanced, TierEmerging}

// SkillProfile is the tiered skill requirement of a target role.
type SkillProfile struct {
	Core     []string `json:"core"`
	Advanced []string `json:"advanced"`
	Emerging []string `json:"emerging"`
}

// All returns core, advanced and emerging skills concatenated in that order.
// Skills repeated across tiers are kept.
func (p SkillProfile) All() []string {
	all := make([]string, 0, len(p.Core)+len(p.Advanced)+len(p.Emerging))
	all = append(all, p.Core...)
	all = append(all, p.Advanced...)
	all = append(all, p.Emerging...)
	return all
}

func (p SkillProfile) Tier(tier SkillTier) []string {
	switch tier {
	case TierCore:
		return p.Core
	case TierAdvanced:
		return p.Advanced
	case TierEmerging:
		return p.Emerging
	}
	return nil
}

type Course struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Provider string   `json:"provider"`
	URL      string   `json:"url"`
	Duration string   `json:"duration"`
	Rating   float64  `json:"rating"`
	Skills   []string `json:"skills"`
}

type Project struct {
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyMixed  Difficulty = "Mixed"
)

type InterviewQuestion struct {
	Question         string     `json:"question"`
	Difficulty       Difficulty `json:"difficulty"`
	Category         string     `json:"category"`
	ExpectedKeywords []string   `json:"expected_keywords"`
}
