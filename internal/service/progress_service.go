package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/raflytch/skillorbit-server/internal/domain"

	"github.com/google/uuid"
)

const (
	dashboardCachePrefix   = "dashboard:"
	dashboardCacheDuration = 5 * time.Minute
	recentLimit            = 5
)

const (
	EventAnalysisSaved       = "analysis.saved"
	EventInterviewSaved      = "interview.saved"
	EventCourseCompleted     = "course.completed"
	EventAchievementUnlocked = "achievement.unlocked"
)

var (
	ErrMissingUserID = errors.New("user id is required")
)

type progressService struct {
	analysisRepo    domain.AnalysisRepository
	interviewRepo   domain.InterviewRepository
	courseRepo      domain.CourseRepository
	achievementRepo domain.AchievementRepository
	cacheRepo       domain.CacheRepository
	publisher       domain.EventPublisher
	now             func() time.Time

	// writes counts invalidations per user so a dashboard built from data
	// older than the latest write is not left in the cache.
	mu     sync.Mutex
	writes map[string]uint64
}

func NewProgressService(
	analysisRepo domain.AnalysisRepository,
	interviewRepo domain.InterviewRepository,
	courseRepo domain.CourseRepository,
	achievementRepo domain.AchievementRepository,
	cacheRepo domain.CacheRepository,
	publisher domain.EventPublisher,
	now func() time.Time,
) domain.ProgressService {
	if now == nil {
		now = time.Now
	}
	return &progressService{
		analysisRepo:    analysisRepo,
		interviewRepo:   interviewRepo,
		courseRepo:      courseRepo,
		achievementRepo: achievementRepo,
		cacheRepo:       cacheRepo,
		publisher:       publisher,
		now:             now,
		writes:          make(map[string]uint64),
	}
}

func (s *progressService) SaveAnalysis(ctx context.Context, record *domain.AnalysisRecord) (*domain.AnalysisRecord, error) {
	if record.UserID == "" {
		return nil, ErrMissingUserID
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = s.now()

	if err := s.analysisRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	s.invalidate(ctx, record.UserID)
	s.publish(ctx, EventAnalysisSaved, record)

	count, err := s.analysisRepo.CountByUserID(ctx, record.UserID)
	if err != nil {
		log.Printf("failed to count analyses for user %s: %v", record.UserID, err)
	}
	badges := reached(analysisMilestones, count)
	if record.FutureProofingScore >= 100 {
		badges = append(badges, futureProof)
	}
	s.awardAll(ctx, record.UserID, badges)

	return record, nil
}

func (s *progressService) SaveInterview(ctx context.Context, record *domain.InterviewRecord) (*domain.InterviewRecord, error) {
	if record.UserID == "" {
		return nil, ErrMissingUserID
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = s.now()

	if err := s.interviewRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}
	s.invalidate(ctx, record.UserID)
	s.publish(ctx, EventInterviewSaved, record)

	count, err := s.interviewRepo.CountByUserID(ctx, record.UserID)
	if err != nil {
		log.Printf("failed to count interviews for user %s: %v", record.UserID, err)
	}
	badges := reached(interviewMilestones, count)
	if record.TotalScore >= highScoreThreshold {
		badges = append(badges, highScoreBadge)
	}
	s.awardAll(ctx, record.UserID, badges)

	return record, nil
}

func (s *progressService) UserAnalyses(ctx context.Context, userID string) ([]domain.AnalysisRecord, error) {
	return s.analysisRepo.FindByUserID(ctx, userID)
}

func (s *progressService) UserInterviews(ctx context.Context, userID string) ([]domain.InterviewRecord, error) {
	return s.interviewRepo.FindByUserID(ctx, userID)
}

func (s *progressService) UserCourses(ctx context.Context, userID string) ([]domain.CourseProgress, error) {
	return s.courseRepo.FindByUserID(ctx, userID)
}

func (s *progressService) UserAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	return s.achievementRepo.FindByUserID(ctx, userID)
}

func (s *progressService) EnrollCourse(ctx context.Context, userID string, req *domain.EnrollCourseRequest) (*domain.CourseProgress, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	course := &domain.CourseProgress{
		ID:             uuid.New().String(),
		UserID:         userID,
		CourseID:       req.CourseID,
		Title:          req.Title,
		Provider:       req.Provider,
		URL:            req.URL,
		SkillAddressed: req.Skill,
		EnrolledAt:     s.now(),
		Completed:      false,
		Progress:       0,
	}
	if course.CourseID == "" {
		course.CourseID = course.ID
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to enroll course: %w", err)
	}
	s.invalidate(ctx, userID)

	return course, nil
}

// UpdateCourseProgress updates the first enrollment matching courseID. An
// unknown pair changes nothing and yields a nil course without error.
func (s *progressService) UpdateCourseProgress(ctx context.Context, userID, courseID string, req *domain.UpdateCourseProgressRequest) (*domain.CourseProgress, error) {
	course, err := s.courseRepo.UpdateProgress(ctx, userID, courseID, req.Progress, req.Completed, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update course progress: %w", err)
	}
	s.invalidate(ctx, userID)

	if req.Completed {
		s.publish(ctx, EventCourseCompleted, course)

		count, err := s.courseRepo.CountCompletedByUserID(ctx, userID)
		if err != nil {
			log.Printf("failed to count completed courses for user %s: %v", userID, err)
		}
		s.awardAll(ctx, userID, reached(courseMilestones, count))
	}

	return course, nil
}

// AwardAchievement stores the achievement once per user and type. It returns
// nil when the user already holds it.
func (s *progressService) AwardAchievement(ctx context.Context, userID string, achievementType domain.AchievementType, title, description, icon string) (*domain.Achievement, error) {
	achievement := &domain.Achievement{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        achievementType,
		Title:       title,
		Description: description,
		Icon:        icon,
		EarnedAt:    s.now(),
	}

	created, err := s.achievementRepo.Award(ctx, achievement)
	if err != nil {
		return nil, fmt.Errorf("failed to award achievement: %w", err)
	}
	if !created {
		return nil, nil
	}

	s.invalidate(ctx, userID)
	s.publish(ctx, EventAchievementUnlocked, achievement)
	return achievement, nil
}

func (s *progressService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	cacheKey := dashboardCachePrefix + userID

	cached, err := s.cacheRepo.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var dashboard domain.Dashboard
		if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
			return &dashboard, nil
		}
	}

	generation := s.generation(userID)

	analyses, err := s.analysisRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load analyses: %w", err)
	}
	interviews, err := s.interviewRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interviews: %w", err)
	}
	courses, err := s.courseRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	achievements, err := s.achievementRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	completed := 0
	for _, c := range courses {
		if c.Completed {
			completed++
		}
	}
	var completionRate float64
	if len(courses) > 0 {
		completionRate = round1(float64(completed) / float64(len(courses)) * 100)
	}

	analysisScores := make([]int, len(analyses))
	for i, a := range analyses {
		analysisScores[i] = a.FutureProofingScore
	}
	interviewScores := make([]float64, len(interviews))
	for i, iv := range interviews {
		interviewScores[i] = iv.TotalScore
	}
	latest := 0
	if len(analysisScores) > 0 {
		latest = analysisScores[len(analysisScores)-1]
	}

	dashboard := &domain.Dashboard{
		UserID: userID,
		Stats: domain.DashboardStats{
			TotalAnalyses:     len(analyses),
			TotalInterviews:   len(interviews),
			TotalCourses:      len(courses),
			CompletedCourses:  completed,
			CompletionRate:    completionRate,
			TotalAchievements: len(achievements),
		},
		Progress: domain.DashboardProgress{
			AnalysisScores:  analysisScores,
			InterviewScores: interviewScores,
			LatestScore:     latest,
		},
		RecentAnalyses:   newestFirst(analyses, recentLimit),
		RecentInterviews: newestFirst(interviews, recentLimit),
		Courses:          courses,
		Achievements:     achievements,
	}

	if err := s.cacheRepo.Set(ctx, cacheKey, dashboard, dashboardCacheDuration); err != nil {
		log.Printf("failed to cache dashboard for user %s: %v", userID, err)
	} else if s.generation(userID) != generation {
		s.dropDashboard(ctx, userID)
	}

	return dashboard, nil
}

func (s *progressService) awardAll(ctx context.Context, userID string, badges []badge) {
	for _, b := range badges {
		if _, err := s.AwardAchievement(ctx, userID, b.Type, b.Title, b.Description, b.Icon); err != nil {
			log.Printf("failed to award %s to user %s: %v", b.Type, userID, err)
		}
	}
}

func (s *progressService) generation(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[userID]
}

func (s *progressService) invalidate(ctx context.Context, userID string) {
	s.mu.Lock()
	s.writes[userID]++
	s.mu.Unlock()
	s.dropDashboard(ctx, userID)
}

func (s *progressService) dropDashboard(ctx context.Context, userID string) {
	if err := s.cacheRepo.Delete(ctx, dashboardCachePrefix+userID); err != nil {
		log.Printf("failed to invalidate dashboard cache for user %s: %v", userID, err)
	}
}

func (s *progressService) publish(ctx context.Context, routingKey string, payload interface{}) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		log.Printf("failed to publish %s: %v", routingKey, err)
	}
}

// newestFirst returns the last n items of records, most recent first.
func newestFirst[T any](records []T, n int) []T {
	start := max(0, len(records)-n)
	recent := slices.Clone(records[start:])
	slices.Reverse(recent)
	return recent
}
