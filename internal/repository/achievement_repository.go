package repository

import (
	"context"
	"database/sql"

	"github.com/raflytch/skillorbit-server/internal/domain"
)

const (
	achievementColumns = `id, user_id, achievement_type, title, description, icon, earned_at`
)

type achievementRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewAchievementRepository(db *sql.DB, d Dialect) domain.AchievementRepository {
	return &achievementRepository{db: db, dialect: d}
}

func (r *achievementRepository) Award(ctx context.Context, achievement *domain.Achievement) (bool, error) {
	query := `
		INSERT INTO achievements (` + achievementColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, achievement_type) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, r.dialect.rebind(query),
		achievement.ID,
		achievement.UserID,
		string(achievement.Type),
		achievement.Title,
		achievement.Description,
		achievement.Icon,
		achievement.EarnedAt,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *achievementRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Achievement, error) {
	query := `
		SELECT ` + achievementColumns + `
		FROM achievements
		WHERE user_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(query), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := make([]domain.Achievement, 0)
	for rows.Next() {
		var a domain.Achievement
		var achievementType string
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&achievementType,
			&a.Title,
			&a.Description,
			&a.Icon,
			&a.EarnedAt,
		); err != nil {
			return nil, err
		}
		a.Type = domain.AchievementType(achievementType)
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
