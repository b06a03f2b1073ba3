package domain

import (
	"context"
	"time"
)

type CourseProgress struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	CourseID       string     `json:"course_id"`
	Title          string     `json:"title"`
	Provider       string     `json:"provider"`
	URL            string     `json:"url"`
	SkillAddressed string     `json:"skill_addressed"`
	EnrolledAt     time.Time  `json:"enrolled_at"`
	Completed      bool       `json:"completed"`
	Progress       int        `json:"progress"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type EnrollCourseRequest struct {
	CourseID string `json:"course_id" validate:"omitempty,max=128"`
	Title    string `json:"title" validate:"required_without=CourseID,max=255"`
	Provider string `json:"provider" validate:"max=128"`
	URL      string `json:"url" validate:"omitempty,url"`
	Skill    string `json:"skill" validate:"max=128"`
}

type UpdateCourseProgressRequest struct {
	Progress  int  `json:"progress" validate:"gte=0,lte=100"`
	Completed bool `json:"completed"`
}

type AchievementType string

const (
	AchievementFirstAnalysis  AchievementType = "first_analysis"
	AchievementAnalysis5      AchievementType = "analysis_5"
	AchievementAnalysis10     AchievementType = "analysis_10"
	AchievementFirstInterview AchievementType = "first_interview"
	AchievementInterview3     AchievementType = "interview_3"
	AchievementInterview10    AchievementType = "interview_10"
	AchievementFirstCourse    AchievementType = "first_course"
	AchievementCourse5        AchievementType = "course_5"
	AchievementCourse10       AchievementType = "course_10"
	AchievementHighScore      AchievementType = "high_score"
	AchievementSkillGapClosed AchievementType = "skill_gap_closed"
)

type Achievement struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        AchievementType `json:"achievement_type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	EarnedAt    time.Time       `json:"earned_at"`
}

type DashboardStats struct {
	TotalAnalyses     int     `json:"total_analyses"`
	TotalInterviews   int     `json:"total_interviews"`
	TotalCourses      int     `json:"total_courses"`
	CompletedCourses  int     `json:"completed_courses"`
	CompletionRate    float64 `json:"completion_rate"`
	TotalAchievements int     `json:"total_achievements"`
}

type DashboardProgress struct {
	AnalysisScores  []int     `json:"analysis_scores"`
	InterviewScores []float64 `json:"interview_scores"`
	LatestScore     int       `json:"latest_score"`
}

type Dashboard struct {
	UserID           string            `json:"user_id"`
	Stats            DashboardStats    `json:"stats"`
	Progress         DashboardProgress `json:"progress"`
	RecentAnalyses   []AnalysisRecord  `json:"recent_analyses"`
	RecentInterviews []InterviewRecord `json:"recent_interviews"`
	Courses          []CourseProgress  `json:"courses"`
	Achievements     []Achievement     `json:"achievements"`
}

type CourseRepository interface {
	Create(ctx context.Context, course *CourseProgress) error
	FindByUserID(ctx context.Context, userID string) ([]CourseProgress, error)
	// UpdateProgress updates the first course matching (userID, courseID) and
	// returns the updated record, or ErrRecordNotFound when none matches.
	UpdateProgress(ctx context.Context, userID, courseID string, progress int, completed bool, at time.Time) (*CourseProgress, error)
	CountCompletedByUserID(ctx context.Context, userID string) (int, error)
}

type AchievementRepository interface {
	// Award stores the achievement unless the user already holds one of the
	// same type. It reports whether a record was written.
	Award(ctx context.Context, achievement *Achievement) (bool, error)
	FindByUserID(ctx context.Context, userID string) ([]Achievement, error)
}

type ProgressService interface {
	SaveAnalysis(ctx context.Context, record *AnalysisRecord) (*AnalysisRecord, error)
	SaveInterview(ctx context.Context, record *InterviewRecord) (*InterviewRecord, error)
	UserAnalyses(ctx context.Context, userID string) ([]AnalysisRecord, error)
	UserInterviews(ctx context.Context, userID string) ([]InterviewRecord, error)
	UserCourses(ctx context.Context, userID string) ([]CourseProgress, error)
	UserAchievements(ctx context.Context, userID string) ([]Achievement, error)
	EnrollCourse(ctx context.Context, userID string, req *EnrollCourseRequest) (*CourseProgress, error)
	UpdateCourseProgress(ctx context.Context, userID, courseID string, req *UpdateCourseProgressRequest) (*CourseProgress, error)
	AwardAchievement(ctx context.Context, userID string, achievementType AchievementType, title, description, icon string) (*Achievement, error)
	Dashboard(ctx context.Context, userID string) (*Dashboard, error)
}
