package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/raflytch/skillorbit-server/internal/domain"
)

const (
	analysisColumns = `id, user_id, created_at, target_role, target_year, future_proofing_score, extracted_skills, skill_gaps, recommended_skills, file_name, object_key`
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type analysisRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewAnalysisRepository(db *sql.DB, d Dialect) domain.AnalysisRepository {
	return &analysisRepository{db: db, dialect: d}
}

func (r *analysisRepository) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	extracted, err := encodeList(record.ExtractedSkills)
	if err != nil {
		return err
	}
	gaps, err := encodeList(record.SkillGaps)
	if err != nil {
		return err
	}
	recommended, err := encodeList(record.RecommendedSkills)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO analyses (` + analysisColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, r.dialect.rebind(query),
		record.ID,
		record.UserID,
		record.Timestamp,
		record.TargetRole,
		record.TargetYear,
		record.FutureProofingScore,
		extracted,
		gaps,
		recommended,
		record.FileName,
		record.ObjectKey,
	)
	return err
}

func (r *analysisRepository) FindByID(ctx context.Context, userID, id string) (*domain.AnalysisRecord, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		WHERE user_id = ? AND id = ?
	`
	record, err := r.scanAnalysis(r.db.QueryRowContext(ctx, r.dialect.rebind(query), userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	return record, err
}

func (r *analysisRepository) FindByUserID(ctx context.Context, userID string) ([]domain.AnalysisRecord, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		WHERE user_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(query), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.AnalysisRecord, 0)
	for rows.Next() {
		record, err := r.scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (r *analysisRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(id) FROM analyses WHERE user_id = ?`
	var count int
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(query), userID).Scan(&count)
	return count, err
}

func (r *analysisRepository) scanAnalysis(row scanner) (*domain.AnalysisRecord, error) {
	var record domain.AnalysisRecord
	var extracted, gaps, recommended []byte
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Timestamp,
		&record.TargetRole,
		&record.TargetYear,
		&record.FutureProofingScore,
		&extracted,
		&gaps,
		&recommended,
		&record.FileName,
		&record.ObjectKey,
	)
	if err != nil {
		return nil, err
	}

	if record.ExtractedSkills, err = decodeList(extracted); err != nil {
		return nil, err
	}
	if record.SkillGaps, err = decodeList(gaps); err != nil {
		return nil, err
	}
	if record.RecommendedSkills, err = decodeList(recommended); err != nil {
		return nil, err
	}
	return &record, nil
}
