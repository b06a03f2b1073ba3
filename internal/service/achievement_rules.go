package service

import "github.com/raflytch/skillorbit-server/internal/domain"

const highScoreThreshold = 80

type badge struct {
	Type        domain.AchievementType
	Title       string
	Description string
	Icon        string
}

type milestone struct {
	threshold int
	badge     badge
}

var analysisMilestones = []milestone{
	{1, badge{domain.AchievementFirstAnalysis, "First Step", "Completed your first skill analysis", "🎯"}},
	{5, badge{domain.AchievementAnalysis5, "Analyzer", "Completed 5 skill analyses", "📊"}},
	{10, badge{domain.AchievementAnalysis10, "Expert Analyzer", "Completed 10 skill analyses", "🔥"}},
}

var interviewMilestones = []milestone{
	{1, badge{domain.AchievementFirstInterview, "Interview Rookie", "Completed your first mock interview", "🎤"}},
	{3, badge{domain.AchievementInterview3, "Interview Pro", "Completed 3 mock interviews", "💼"}},
	{10, badge{domain.AchievementInterview10, "Interview Master", "Completed 10 mock interviews", "👑"}},
}

var courseMilestones = []milestone{
	{1, badge{domain.AchievementFirstCourse, "Lifelong Learner", "Completed your first course", "📚"}},
	{5, badge{domain.AchievementCourse5, "Knowledge Seeker", "Completed 5 courses", "🎓"}},
	{10, badge{domain.AchievementCourse10, "Scholar", "Completed 10 courses", "🏆"}},
}

var (
	highScoreBadge = badge{domain.AchievementHighScore, "High Scorer", "Scored 80 or more in a mock interview", "⭐"}
	futureProof    = badge{domain.AchievementSkillGapClosed, "Future Proof", "Matched every skill for your target role", "🚀"}
)

// reached returns the badges whose threshold count has reached. Awarding is
// idempotent, so badges already held are filtered out downstream.
func reached(milestones []milestone, count int) []badge {
	out := make([]badge, 0, len(milestones))
	for _, m := range milestones {
		if count >= m.threshold {
			out = append(out, m.badge)
		}
	}
	return out
}
