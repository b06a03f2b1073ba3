package service

import (
	"context"
	"strings"
	"testing"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterviewService(progress domain.ProgressService) domain.InterviewService {
	return NewInterviewService(catalog.Default(), sentiment.New(), progress, NewSeededRandom(3), fixedClock)
}

func TestStartInterview(t *testing.T) {
	svc := newTestInterviewService(nil)

	got, err := svc.Start(context.Background(), &domain.StartInterviewRequest{TargetRole: "AI Engineer", Difficulty: domain.DifficultyMixed})
	require.NoError(t, err)

	assert.Equal(t, "INT_20260301093000", got.InterviewID)
	assert.Equal(t, "AI Engineer", got.TargetRole)
	assert.Len(t, got.Questions, 5)
	assert.Equal(t, 5, got.TotalQuestions)
	assert.Equal(t, "15-25 minutes", got.EstimatedDuration)

	seen := make(map[string]bool)
	for _, q := range got.Questions {
		assert.False(t, seen[q.Question], "question repeated: %s", q.Question)
		seen[q.Question] = true
	}
}

func TestStartInterviewFiltersByDifficulty(t *testing.T) {
	svc := newTestInterviewService(nil)

	got, err := svc.Start(context.Background(), &domain.StartInterviewRequest{TargetRole: "Cloud Architect", Difficulty: domain.DifficultyMedium})
	require.NoError(t, err)
	assert.Len(t, got.Questions, 2)
	for _, q := range got.Questions {
		assert.Equal(t, domain.DifficultyMedium, q.Difficulty)
	}
	assert.Equal(t, "6-10 minutes", got.EstimatedDuration)
}

func TestStartInterviewWithNoMatchingQuestions(t *testing.T) {
	svc := newTestInterviewService(nil)

	got, err := svc.Start(context.Background(), &domain.StartInterviewRequest{TargetRole: "Product Manager", Difficulty: domain.DifficultyHard})
	require.NoError(t, err)
	assert.Empty(t, got.Questions)
	assert.Equal(t, 0, got.TotalQuestions)
	assert.Equal(t, "0-0 minutes", got.EstimatedDuration)
}

func TestStartInterviewUnknownRoleUsesDefaultBank(t *testing.T) {
	svc := newTestInterviewService(nil)

	got, err := svc.Start(context.Background(), &domain.StartInterviewRequest{TargetRole: "Astronaut"})
	require.NoError(t, err)
	assert.Equal(t, "Astronaut", got.TargetRole)
	assert.Len(t, got.Questions, 5)

	bank := catalog.Default().QuestionBank(catalog.DefaultRole)
	for _, q := range got.Questions {
		assert.Contains(t, bank, q)
	}
}

func TestEvaluateFullMarksForCoverageAndLength(t *testing.T) {
	svc := newTestInterviewService(nil)
	answer := "Overfitting and Regularization " + strings.Repeat("data ", 47)

	got, err := svc.Evaluate(context.Background(), &domain.EvaluateAnswerRequest{
		Answer:           answer,
		ExpectedKeywords: []string{"Overfitting", "Regularization"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"overfitting", "regularization"}, got.KeywordsFound)
	assert.Equal(t, 50, got.WordCount)
	assert.Equal(t, 40.0, got.Breakdown.KeywordCoverage)
	assert.Equal(t, 25.0, got.Breakdown.AnswerLength)
	assert.Equal(t, 0.0, got.Breakdown.Confidence)
	assert.Equal(t, 15.0, got.Breakdown.Clarity)
	assert.Equal(t, 80.0, got.TotalScore)
	assert.Equal(t, "Excellent", got.Performance)
	assert.Equal(t, "🌟", got.Emoji)
	assert.Equal(t, "Outstanding answer!", got.Feedback)
}

func TestEvaluateShortSubjectiveAnswer(t *testing.T) {
	svc := newTestInterviewService(nil)

	got, err := svc.Evaluate(context.Background(), &domain.EvaluateAnswerRequest{
		Answer:           "good",
		ExpectedKeywords: []string{"gradient"},
	})
	require.NoError(t, err)

	assert.Empty(t, got.KeywordsFound)
	assert.Equal(t, 1, got.WordCount)
	assert.Equal(t, 0.0, got.Breakdown.KeywordCoverage)
	assert.Equal(t, 0.5, got.Breakdown.AnswerLength)
	assert.Equal(t, 14.0, got.Breakdown.Confidence)
	assert.Equal(t, 6.0, got.Breakdown.Clarity)
	assert.InDelta(t, 20.5, got.TotalScore, 0.001)
	assert.Equal(t, "Poor", got.Performance)
}

func TestEvaluateWithoutKeywords(t *testing.T) {
	svc := newTestInterviewService(nil)

	got, err := svc.Evaluate(context.Background(), &domain.EvaluateAnswerRequest{Answer: ""})
	require.NoError(t, err)
	assert.Equal(t, 0, got.WordCount)
	assert.Equal(t, 0.0, got.Breakdown.KeywordCoverage)
	assert.Equal(t, 15.0, got.TotalScore)
}

func TestPerformanceTiers(t *testing.T) {
	svc := newTestInterviewService(nil)
	filler := func(n int) string { return strings.Repeat("data ", n) }

	cases := []struct {
		answer      string
		keywords    []string
		performance string
	}{
		// 40 + 25 + 15
		{filler(50) + "alpha beta", []string{"alpha", "beta"}, "Excellent"},
		// 20 + 25 + 15
		{filler(50) + "alpha", []string{"alpha", "beta"}, "Good"},
		// 0 + 25 + 15
		{filler(50), []string{"alpha"}, "Fair"},
		// 0 + 10 + 15
		{filler(20), []string{"alpha"}, "Poor"},
	}
	for _, tc := range cases {
		got, err := svc.Evaluate(context.Background(), &domain.EvaluateAnswerRequest{Answer: tc.answer, ExpectedKeywords: tc.keywords})
		require.NoError(t, err)
		assert.Equal(t, tc.performance, got.Performance, "score %.1f", got.TotalScore)
	}
}

func TestCompleteRequiresAnswers(t *testing.T) {
	svc := newTestInterviewService(nil)

	_, err := svc.Complete(context.Background(), &domain.CompleteInterviewRequest{InterviewID: "INT_1"})
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestCompleteSummarizes(t *testing.T) {
	svc := newTestInterviewService(nil)
	answers := []domain.AnsweredQuestion{
		{Question: "What is overfitting?", Answer: "Memorizing noise", Score: 90, Category: "Machine Learning", Feedback: "Great answer."},
		{Score: 60},
		{Score: 75, Category: "Machine Learning"},
		{Score: 40},
	}

	got, err := svc.Complete(context.Background(), &domain.CompleteInterviewRequest{InterviewID: "INT_1", Answers: answers})
	require.NoError(t, err)

	assert.Equal(t, "INT_1", got.InterviewID)
	assert.Equal(t, 4, got.TotalQuestions)
	assert.Equal(t, 66.3, got.AverageScore)
	assert.Equal(t, "C", got.Grade)
	assert.Equal(t, []string{"Machine Learning"}, got.StrongAreas)
	assert.Equal(t, []string{"General"}, got.WeakAreas)
	assert.Equal(t, answers, got.DetailedScores)
}

func TestCompleteGrades(t *testing.T) {
	svc := newTestInterviewService(nil)

	cases := map[float64]string{100: "A", 80: "A", 79.9: "B", 70: "B", 65: "C", 60: "C", 59.9: "D", 0: "D"}
	for score, grade := range cases {
		got, err := svc.Complete(context.Background(), &domain.CompleteInterviewRequest{Answers: []domain.AnsweredQuestion{{Score: score}}})
		require.NoError(t, err)
		assert.Equal(t, grade, got.Grade, "score %.1f", score)
	}
}

func TestCompleteRecordsForUser(t *testing.T) {
	fx := newProgressFixture(t)
	svc := newTestInterviewService(fx.service)

	_, err := svc.Complete(context.Background(), &domain.CompleteInterviewRequest{
		InterviewID: "INT_7",
		UserID:      "u1",
		Answers:     []domain.AnsweredQuestion{{Score: 85, Category: "NLP"}},
	})
	require.NoError(t, err)

	records, err := fx.service.UserInterviews(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "INT_7", records[0].ID)
	assert.Equal(t, catalog.DefaultRole, records[0].TargetRole)
	assert.Equal(t, 85.0, records[0].TotalScore)
	assert.Equal(t, "A", records[0].Grade)
	assert.Equal(t, 1, records[0].QuestionsAnswered)

	achievements, err := fx.service.UserAchievements(context.Background(), "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]domain.AchievementType{domain.AchievementFirstInterview, domain.AchievementHighScore},
		achievementTypes(achievements))
}

func TestCompleteWithoutUserIsNotRecorded(t *testing.T) {
	fx := newProgressFixture(t)
	svc := newTestInterviewService(fx.service)

	_, err := svc.Complete(context.Background(), &domain.CompleteInterviewRequest{
		Answers: []domain.AnsweredQuestion{{Score: 85}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, fx.publisher.count(EventInterviewSaved))
}
