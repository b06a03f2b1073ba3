package repository

import (
	"context"
	"database/sql"

	"github.com/raflytch/skillorbit-server/internal/domain"
)

const (
	interviewColumns = `id, user_id, created_at, target_role, total_score, grade, questions_answered, strong_areas, weak_areas`
)

type interviewRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewInterviewRepository(db *sql.DB, d Dialect) domain.InterviewRepository {
	return &interviewRepository{db: db, dialect: d}
}

func (r *interviewRepository) Create(ctx context.Context, record *domain.InterviewRecord) error {
	strong, err := encodeList(record.StrongAreas)
	if err != nil {
		return err
	}
	weak, err := encodeList(record.WeakAreas)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO interviews (` + interviewColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, r.dialect.rebind(query),
		record.ID,
		record.UserID,
		record.Timestamp,
		record.TargetRole,
		record.TotalScore,
		record.Grade,
		record.QuestionsAnswered,
		strong,
		weak,
	)
	return err
}

func (r *interviewRepository) FindByUserID(ctx context.Context, userID string) ([]domain.InterviewRecord, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE user_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(query), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.InterviewRecord, 0)
	for rows.Next() {
		record, err := r.scanInterview(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (r *interviewRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(id) FROM interviews WHERE user_id = ?`
	var count int
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(query), userID).Scan(&count)
	return count, err
}

func (r *interviewRepository) scanInterview(row scanner) (*domain.InterviewRecord, error) {
	var record domain.InterviewRecord
	var strong, weak []byte
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Timestamp,
		&record.TargetRole,
		&record.TotalScore,
		&record.Grade,
		&record.QuestionsAnswered,
		&strong,
		&weak,
	)
	if err != nil {
		return nil, err
	}

	if record.StrongAreas, err = decodeList(strong); err != nil {
		return nil, err
	}
	if record.WeakAreas, err = decodeList(weak); err != nil {
		return nil, err
	}
	return &record, nil
}
