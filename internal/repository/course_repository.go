package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/raflytch/skillorbit-server/internal/domain"
)

const (
	courseColumns = `id, user_id, course_id, title, provider, url, skill_addressed, enrolled_at, completed, progress, completed_at`
)

type courseRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewCourseRepository(db *sql.DB, d Dialect) domain.CourseRepository {
	return &courseRepository{db: db, dialect: d}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.CourseProgress) error {
	query := `
		INSERT INTO courses (` + courseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(query),
		course.ID,
		course.UserID,
		course.CourseID,
		course.Title,
		course.Provider,
		course.URL,
		course.SkillAddressed,
		course.EnrolledAt,
		course.Completed,
		course.Progress,
		course.CompletedAt,
	)
	return err
}

func (r *courseRepository) FindByUserID(ctx context.Context, userID string) ([]domain.CourseProgress, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE user_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(query), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]domain.CourseProgress, 0)
	for rows.Next() {
		course, err := r.scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

func (r *courseRepository) UpdateProgress(ctx context.Context, userID, courseID string, progress int, completed bool, at time.Time) (*domain.CourseProgress, error) {
	var completedAt *time.Time
	if completed {
		completedAt = &at
	}

	query := `
		UPDATE courses
		SET progress = ?, completed = ?, completed_at = COALESCE(` + r.dialect.nullTime + `, completed_at)
		WHERE seq = (
			SELECT seq FROM courses
			WHERE user_id = ? AND course_id = ?
			ORDER BY seq ASC
			LIMIT 1
		)
		RETURNING ` + courseColumns
	course, err := r.scanCourse(r.db.QueryRowContext(ctx, r.dialect.rebind(query),
		progress,
		completed,
		completedAt,
		userID,
		courseID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	return course, err
}

func (r *courseRepository) CountCompletedByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(id) FROM courses WHERE user_id = ? AND completed = ?`
	var count int
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(query), userID, true).Scan(&count)
	return count, err
}

func (r *courseRepository) scanCourse(row scanner) (*domain.CourseProgress, error) {
	var course domain.CourseProgress
	err := row.Scan(
		&course.ID,
		&course.UserID,
		&course.CourseID,
		&course.Title,
		&course.Provider,
		&course.URL,
		&course.SkillAddressed,
		&course.EnrolledAt,
		&course.Completed,
		&course.Progress,
		&course.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}
