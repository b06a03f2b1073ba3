package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/raflytch/skillorbit-server/internal/domain"
)

const (
	analysesFile     = "analyses.json"
	interviewsFile   = "interviews.json"
	coursesFile      = "courses.json"
	achievementsFile = "achievements.json"
)

func newFileStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Store{
		Analyses:     NewAnalysisFileRepository(filepath.Join(dataDir, analysesFile)),
		Interviews:   NewInterviewFileRepository(filepath.Join(dataDir, interviewsFile)),
		Courses:      NewCourseFileRepository(filepath.Join(dataDir, coursesFile)),
		Achievements: NewAchievementFileRepository(filepath.Join(dataDir, achievementsFile)),
	}, nil
}

type analysisFileRepository struct {
	col *jsonCollection[domain.AnalysisRecord]
}

func NewAnalysisFileRepository(path string) domain.AnalysisRepository {
	return &analysisFileRepository{col: newJSONCollection[domain.AnalysisRecord](path)}
}

func (r *analysisFileRepository) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	return r.col.update(func(items []domain.AnalysisRecord) ([]domain.AnalysisRecord, bool, error) {
		return append(items, *record), true, nil
	})
}

func (r *analysisFileRepository) FindByID(ctx context.Context, userID, id string) (*domain.AnalysisRecord, error) {
	for _, a := range r.col.all() {
		if a.UserID == userID && a.ID == id {
			return &a, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *analysisFileRepository) FindByUserID(ctx context.Context, userID string) ([]domain.AnalysisRecord, error) {
	return filterByUser(r.col.all(), userID, func(a domain.AnalysisRecord) string { return a.UserID }), nil
}

func (r *analysisFileRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	records, _ := r.FindByUserID(ctx, userID)
	return len(records), nil
}

type interviewFileRepository struct {
	col *jsonCollection[domain.InterviewRecord]
}

func NewInterviewFileRepository(path string) domain.InterviewRepository {
	return &interviewFileRepository{col: newJSONCollection[domain.InterviewRecord](path)}
}

func (r *interviewFileRepository) Create(ctx context.Context, record *domain.InterviewRecord) error {
	return r.col.update(func(items []domain.InterviewRecord) ([]domain.InterviewRecord, bool, error) {
		return append(items, *record), true, nil
	})
}

func (r *interviewFileRepository) FindByUserID(ctx context.Context, userID string) ([]domain.InterviewRecord, error) {
	return filterByUser(r.col.all(), userID, func(i domain.InterviewRecord) string { return i.UserID }), nil
}

func (r *interviewFileRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	records, _ := r.FindByUserID(ctx, userID)
	return len(records), nil
}

type courseFileRepository struct {
	col *jsonCollection[domain.CourseProgress]
}

func NewCourseFileRepository(path string) domain.CourseRepository {
	return &courseFileRepository{col: newJSONCollection[domain.CourseProgress](path)}
}

func (r *courseFileRepository) Create(ctx context.Context, course *domain.CourseProgress) error {
	return r.col.update(func(items []domain.CourseProgress) ([]domain.CourseProgress, bool, error) {
		return append(items, *course), true, nil
	})
}

func (r *courseFileRepository) FindByUserID(ctx context.Context, userID string) ([]domain.CourseProgress, error) {
	return filterByUser(r.col.all(), userID, func(c domain.CourseProgress) string { return c.UserID }), nil
}

func (r *courseFileRepository) UpdateProgress(ctx context.Context, userID, courseID string, progress int, completed bool, at time.Time) (*domain.CourseProgress, error) {
	var updated *domain.CourseProgress
	err := r.col.update(func(items []domain.CourseProgress) ([]domain.CourseProgress, bool, error) {
		for i := range items {
			if items[i].UserID != userID || items[i].CourseID != courseID {
				continue
			}
			items[i].Progress = progress
			items[i].Completed = completed
			if completed {
				completedAt := at
				items[i].CompletedAt = &completedAt
			}
			c := items[i]
			updated = &c
			return items, true, nil
		}
		return items, false, domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *courseFileRepository) CountCompletedByUserID(ctx context.Context, userID string) (int, error) {
	n := 0
	for _, c := range r.col.all() {
		if c.UserID == userID && c.Completed {
			n++
		}
	}
	return n, nil
}

type achievementFileRepository struct {
	col *jsonCollection[domain.Achievement]
}

func NewAchievementFileRepository(path string) domain.AchievementRepository {
	return &achievementFileRepository{col: newJSONCollection[domain.Achievement](path)}
}

func (r *achievementFileRepository) Award(ctx context.Context, achievement *domain.Achievement) (bool, error) {
	created := false
	err := r.col.update(func(items []domain.Achievement) ([]domain.Achievement, bool, error) {
		for _, a := range items {
			if a.UserID == achievement.UserID && a.Type == achievement.Type {
				return items, false, nil
			}
		}
		created = true
		return append(items, *achievement), true, nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *achievementFileRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Achievement, error) {
	return filterByUser(r.col.all(), userID, func(a domain.Achievement) string { return a.UserID }), nil
}

func filterByUser[T any](items []T, userID string, owner func(T) string) []T {
	out := make([]T, 0)
	for _, item := range items {
		if owner(item) == userID {
			out = append(out, item)
		}
	}
	return out
}
