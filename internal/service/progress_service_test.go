package service

import (
	"context"
	"testing"

	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAnalysisRequiresUser(t *testing.T) {
	fx := newProgressFixture(t)

	_, err := fx.service.SaveAnalysis(context.Background(), &domain.AnalysisRecord{})
	assert.ErrorIs(t, err, ErrMissingUserID)
	_, err = fx.service.SaveInterview(context.Background(), &domain.InterviewRecord{})
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestSaveAnalysisAwardsMilestonesOnce(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	saved, err := fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", FutureProofingScore: 40})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.True(t, saved.Timestamp.Equal(fixedNow))

	achievements, err := fx.service.UserAchievements(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.AchievementType{domain.AchievementFirstAnalysis}, achievementTypes(achievements))

	for i := 0; i < 4; i++ {
		_, err := fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", FutureProofingScore: 50})
		require.NoError(t, err)
	}

	achievements, err = fx.service.UserAchievements(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t,
		[]domain.AchievementType{domain.AchievementFirstAnalysis, domain.AchievementAnalysis5},
		achievementTypes(achievements))
	assert.Equal(t, "📊", achievements[1].Icon)

	assert.Equal(t, 5, fx.publisher.count(EventAnalysisSaved))
	assert.Equal(t, 2, fx.publisher.count(EventAchievementUnlocked))
}

func TestPerfectAnalysisAwardsFutureProof(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	_, err := fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", FutureProofingScore: 100})
	require.NoError(t, err)

	achievements, err := fx.service.UserAchievements(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t,
		[]domain.AchievementType{domain.AchievementFirstAnalysis, domain.AchievementSkillGapClosed},
		achievementTypes(achievements))
}

func TestSaveInterviewMilestones(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	for _, score := range []float64{50, 60, 70} {
		_, err := fx.service.SaveInterview(ctx, &domain.InterviewRecord{UserID: "u1", TotalScore: score})
		require.NoError(t, err)
	}

	achievements, err := fx.service.UserAchievements(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t,
		[]domain.AchievementType{domain.AchievementFirstInterview, domain.AchievementInterview3},
		achievementTypes(achievements))
}

func TestAwardAchievementIsIdempotent(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	first, err := fx.service.AwardAchievement(ctx, "u1", domain.AchievementHighScore, "High Scorer", "desc", "⭐")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "u1", first.UserID)

	second, err := fx.service.AwardAchievement(ctx, "u1", domain.AchievementHighScore, "High Scorer", "desc", "⭐")
	require.NoError(t, err)
	assert.Nil(t, second)

	other, err := fx.service.AwardAchievement(ctx, "u2", domain.AchievementHighScore, "High Scorer", "desc", "⭐")
	require.NoError(t, err)
	assert.NotNil(t, other)

	assert.Equal(t, 2, fx.publisher.count(EventAchievementUnlocked))
}

func TestEnrollAndCompleteCourse(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	course, err := fx.service.EnrollCourse(ctx, "u1", &domain.EnrollCourseRequest{Title: "Kubernetes Basics", Provider: "Udemy"})
	require.NoError(t, err)
	assert.Equal(t, course.ID, course.CourseID)
	assert.False(t, course.Completed)
	assert.Equal(t, 0, course.Progress)
	assert.True(t, course.EnrolledAt.Equal(fixedNow))

	updated, err := fx.service.UpdateCourseProgress(ctx, "u1", course.CourseID, &domain.UpdateCourseProgressRequest{Progress: 60})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 60, updated.Progress)
	assert.Equal(t, 0, fx.publisher.count(EventCourseCompleted))

	updated, err = fx.service.UpdateCourseProgress(ctx, "u1", course.CourseID, &domain.UpdateCourseProgressRequest{Progress: 100, Completed: true})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(fixedNow))
	assert.Equal(t, 1, fx.publisher.count(EventCourseCompleted))

	achievements, err := fx.service.UserAchievements(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.AchievementType{domain.AchievementFirstCourse}, achievementTypes(achievements))
}

func TestUpdateUnknownCourse(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	_, err := fx.service.EnrollCourse(ctx, "u1", &domain.EnrollCourseRequest{CourseID: "k8s", Title: "Kubernetes"})
	require.NoError(t, err)

	updated, err := fx.service.UpdateCourseProgress(ctx, "u1", "missing", &domain.UpdateCourseProgressRequest{Progress: 100, Completed: true})
	require.NoError(t, err)
	assert.Nil(t, updated)

	courses, err := fx.service.UserCourses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.False(t, courses[0].Completed)
	assert.Equal(t, 0, fx.publisher.count(EventCourseCompleted))
}

func TestDashboard(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	empty, err := fx.service.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.Stats.CompletionRate)
	assert.Equal(t, 0, empty.Progress.LatestScore)
	assert.Empty(t, empty.RecentAnalyses)

	for i, score := range []int{10, 20, 30, 40, 50, 60} {
		_, err := fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{ID: string(rune('a' + i)), UserID: "u1", FutureProofingScore: score})
		require.NoError(t, err)
	}
	_, err = fx.service.SaveInterview(ctx, &domain.InterviewRecord{UserID: "u1", TotalScore: 72.5})
	require.NoError(t, err)
	for _, id := range []string{"c1", "c2", "c3"} {
		_, err := fx.service.EnrollCourse(ctx, "u1", &domain.EnrollCourseRequest{CourseID: id, Title: id})
		require.NoError(t, err)
	}
	_, err = fx.service.UpdateCourseProgress(ctx, "u1", "c2", &domain.UpdateCourseProgressRequest{Progress: 100, Completed: true})
	require.NoError(t, err)

	got, err := fx.service.Dashboard(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 6, got.Stats.TotalAnalyses)
	assert.Equal(t, 1, got.Stats.TotalInterviews)
	assert.Equal(t, 3, got.Stats.TotalCourses)
	assert.Equal(t, 1, got.Stats.CompletedCourses)
	assert.Equal(t, 33.3, got.Stats.CompletionRate)
	assert.Equal(t, len(got.Achievements), got.Stats.TotalAchievements)

	assert.Equal(t, []int{10, 20, 30, 40, 50, 60}, got.Progress.AnalysisScores)
	assert.Equal(t, []float64{72.5}, got.Progress.InterviewScores)
	assert.Equal(t, 60, got.Progress.LatestScore)

	require.Len(t, got.RecentAnalyses, 5)
	assert.Equal(t, "f", got.RecentAnalyses[0].ID)
	assert.Equal(t, "b", got.RecentAnalyses[4].ID)
}

func TestDashboardCacheIsInvalidatedOnWrite(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	_, err := fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", FutureProofingScore: 10})
	require.NoError(t, err)

	first, err := fx.service.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Stats.TotalAnalyses)

	// a write behind the service is not visible until the cache is dropped
	require.NoError(t, fx.store.Analyses.Create(ctx, &domain.AnalysisRecord{ID: "raw", UserID: "u1"}))
	cached, err := fx.service.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Stats.TotalAnalyses)

	_, err = fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", FutureProofingScore: 20})
	require.NoError(t, err)
	fresh, err := fx.service.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Stats.TotalAnalyses)
	assert.Equal(t, 20, fresh.Progress.LatestScore)
}

// slowAchievements runs before once, in the middle of a dashboard build.
type slowAchievements struct {
	domain.AchievementRepository
	before func()
}

func (r *slowAchievements) FindByUserID(ctx context.Context, userID string) ([]domain.Achievement, error) {
	if fn := r.before; fn != nil {
		r.before = nil
		fn()
	}
	return r.AchievementRepository.FindByUserID(ctx, userID)
}

func TestDashboardBuiltDuringWriteIsNotCached(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()
	achievements := &slowAchievements{AchievementRepository: fx.store.Achievements}
	svc := NewProgressService(
		fx.store.Analyses, fx.store.Interviews, fx.store.Courses, achievements,
		repository.NewMemoryCache(), fx.publisher, fixedClock,
	)

	_, err := svc.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", FutureProofingScore: 10})
	require.NoError(t, err)

	achievements.before = func() {
		_, err := svc.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", FutureProofingScore: 30})
		require.NoError(t, err)
	}
	stale, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stale.Stats.TotalAnalyses)

	fresh, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Stats.TotalAnalyses)
	assert.Equal(t, 30, fresh.Progress.LatestScore)
}

func TestNewestFirst(t *testing.T) {
	assert.Equal(t, []int{3, 2}, newestFirst([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{3, 2, 1}, newestFirst([]int{1, 2, 3}, 5))
	assert.Empty(t, newestFirst([]int{}, 5))
}
