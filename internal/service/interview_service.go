package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/sentiment"
)

var (
	ErrNoAnswers = errors.New("no answers provided")
)

const (
	maxInterviewQuestions = 5
	defaultCategory       = "General"
	strongAreaScore       = 70
)

type performanceTier struct {
	min         float64
	performance string
	emoji       string
	feedback    string
}

var performanceTiers = []performanceTier{
	{80, "Excellent", "🌟", "Outstanding answer!"},
	{60, "Good", "👍", "Good job!"},
	{40, "Fair", "😐", "Needs improvement"},
	{0, "Poor", "❌", "Keep practicing"},
}

type gradeTier struct {
	min     float64
	grade   string
	message string
}

var gradeTiers = []gradeTier{
	{80, "A", "Outstanding performance! You're interview-ready!"},
	{70, "B", "Good job! A bit more practice and you'll ace it!"},
	{60, "C", "Decent effort. Focus on key concepts and practice more."},
	{0, "D", "Keep practicing! Review fundamentals and try again."},
}

type interviewService struct {
	catalog  *catalog.Catalog
	analyzer *sentiment.Analyzer
	progress domain.ProgressService
	rnd      Random
	now      func() time.Time
}

// NewInterviewService builds the mock interview engine. progress may be nil,
// in which case completed interviews are never recorded.
func NewInterviewService(
	c *catalog.Catalog,
	analyzer *sentiment.Analyzer,
	progress domain.ProgressService,
	rnd Random,
	now func() time.Time,
) domain.InterviewService {
	if now == nil {
		now = time.Now
	}
	return &interviewService{
		catalog:  c,
		analyzer: analyzer,
		progress: progress,
		rnd:      rnd,
		now:      now,
	}
}

func (s *interviewService) Start(ctx context.Context, req *domain.StartInterviewRequest) (*domain.InterviewSession, error) {
	pool := s.catalog.QuestionBank(req.TargetRole)

	if req.Difficulty != "" && req.Difficulty != domain.DifficultyMixed {
		filtered := make([]domain.InterviewQuestion, 0, len(pool))
		for _, q := range pool {
			if q.Difficulty == req.Difficulty {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	}

	questions := sample(s.rnd, pool, maxInterviewQuestions)
	n := len(questions)

	return &domain.InterviewSession{
		InterviewID:       "INT_" + s.now().Format("20060102150405"),
		TargetRole:        req.TargetRole,
		Questions:         questions,
		TotalQuestions:    n,
		EstimatedDuration: fmt.Sprintf("%d-%d minutes", n*3, n*5),
	}, nil
}

func (s *interviewService) Evaluate(ctx context.Context, req *domain.EvaluateAnswerRequest) (*domain.AnswerEvaluation, error) {
	answer := strings.ToLower(req.Answer)

	found := make([]string, 0)
	for _, kw := range req.ExpectedKeywords {
		kw = strings.ToLower(kw)
		if strings.Contains(answer, kw) {
			found = append(found, kw)
		}
	}

	var keywordScore float64
	if len(req.ExpectedKeywords) > 0 {
		keywordScore = float64(len(found)) / float64(len(req.ExpectedKeywords)) * 40
	}

	wordCount := len(strings.Fields(answer))
	lengthScore := min(float64(wordCount)/50*25, 25)

	mood := s.analyzer.Analyze(answer)
	confidenceScore := min(math.Abs(mood.Polarity)*20, 20)
	clarityScore := (1 - mood.Subjectivity) * 15

	total := round1(keywordScore + lengthScore + confidenceScore + clarityScore)

	tier := performanceTiers[len(performanceTiers)-1]
	for _, t := range performanceTiers {
		if total >= t.min {
			tier = t
			break
		}
	}

	return &domain.AnswerEvaluation{
		TotalScore: total,
		Breakdown: domain.ScoreBreakdown{
			KeywordCoverage: round1(keywordScore),
			AnswerLength:    round1(lengthScore),
			Confidence:      round1(confidenceScore),
			Clarity:         round1(clarityScore),
		},
		KeywordsFound: found,
		WordCount:     wordCount,
		Performance:   tier.performance,
		Emoji:         tier.emoji,
		Feedback:      tier.feedback,
	}, nil
}

func (s *interviewService) Complete(ctx context.Context, req *domain.CompleteInterviewRequest) (*domain.InterviewSummary, error) {
	if len(req.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	var sum float64
	strong := make([]string, 0)
	weak := make([]string, 0)
	for _, a := range req.Answers {
		sum += a.Score
		category := a.Category
		if category == "" {
			category = defaultCategory
		}
		if a.Score >= strongAreaScore {
			strong = appendUnique(strong, category)
		} else {
			weak = appendUnique(weak, category)
		}
	}
	average := sum / float64(len(req.Answers))

	grade := gradeTiers[len(gradeTiers)-1]
	for _, g := range gradeTiers {
		if average >= g.min {
			grade = g
			break
		}
	}

	summary := &domain.InterviewSummary{
		InterviewID:    req.InterviewID,
		TotalQuestions: len(req.Answers),
		AverageScore:   round1(average),
		Grade:          grade.grade,
		Message:        grade.message,
		StrongAreas:    strong,
		WeakAreas:      weak,
		DetailedScores: req.Answers,
	}

	if req.UserID != "" && s.progress != nil {
		s.record(ctx, req, summary)
	}

	return summary, nil
}

func (s *interviewService) record(ctx context.Context, req *domain.CompleteInterviewRequest, summary *domain.InterviewSummary) {
	role := req.TargetRole
	if role == "" {
		role = s.catalog.DefaultRole
	}

	_, err := s.progress.SaveInterview(ctx, &domain.InterviewRecord{
		ID:                req.InterviewID,
		UserID:            req.UserID,
		TargetRole:        role,
		TotalScore:        summary.AverageScore,
		Grade:             summary.Grade,
		QuestionsAnswered: summary.TotalQuestions,
		StrongAreas:       summary.StrongAreas,
		WeakAreas:         summary.WeakAreas,
	})
	if err != nil {
		log.Printf("failed to record interview %s for user %s: %v", req.InterviewID, req.UserID, err)
	}
}

func appendUnique(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
