package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Dialect holds the few SQL differences between PostgreSQL and SQLite.
type Dialect struct {
	Name      string
	numbered  bool
	serialKey string
	timestamp string
	// nullTime wraps a nullable timestamp parameter so PostgreSQL can infer its type.
	nullTime string
}

var (
	Postgres = Dialect{
		Name:      "postgres",
		numbered:  true,
		serialKey: "seq BIGSERIAL PRIMARY KEY",
		timestamp: "TIMESTAMPTZ",
		nullTime:  "CAST(? AS TIMESTAMPTZ)",
	}
	SQLite = Dialect{
		Name:      "sqlite",
		serialKey: "seq INTEGER PRIMARY KEY AUTOINCREMENT",
		timestamp: "TIMESTAMP",
		nullTime:  "?",
	}
)

// rebind rewrites ? placeholders as $1, $2, ... for dialects that number them.
func (d Dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			` + d.serialKey + `,
			id TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			created_at ` + d.timestamp + ` NOT NULL,
			target_role TEXT NOT NULL,
			target_year INTEGER NOT NULL,
			future_proofing_score INTEGER NOT NULL,
			extracted_skills TEXT NOT NULL,
			skill_gaps TEXT NOT NULL,
			recommended_skills TEXT NOT NULL,
			file_name TEXT NOT NULL DEFAULT '',
			object_key TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_user_id ON analyses (user_id)`,
		`CREATE TABLE IF NOT EXISTS interviews (
			` + d.serialKey + `,
			id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			created_at ` + d.timestamp + ` NOT NULL,
			target_role TEXT NOT NULL,
			total_score DOUBLE PRECISION NOT NULL,
			grade TEXT NOT NULL,
			questions_answered INTEGER NOT NULL,
			strong_areas TEXT NOT NULL,
			weak_areas TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interviews_user_id ON interviews (user_id)`,
		`CREATE TABLE IF NOT EXISTS courses (
			` + d.serialKey + `,
			id TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			course_id TEXT NOT NULL,
			title TEXT NOT NULL,
			provider TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			skill_addressed TEXT NOT NULL DEFAULT '',
			enrolled_at ` + d.timestamp + ` NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			progress INTEGER NOT NULL DEFAULT 0,
			completed_at ` + d.timestamp + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_user_course ON courses (user_id, course_id)`,
		`CREATE TABLE IF NOT EXISTS achievements (
			` + d.serialKey + `,
			id TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			achievement_type TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			earned_at ` + d.timestamp + ` NOT NULL,
			UNIQUE (user_id, achievement_type)
		)`,
	}
}

// Migrate creates any missing tables and indexes.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, stmt := range d.schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", d.Name, err)
		}
	}
	return nil
}

func newSQLStore(ctx context.Context, db *sql.DB, d Dialect) (*Store, error) {
	if err := Migrate(ctx, db, d); err != nil {
		return nil, err
	}
	return &Store{
		Analyses:     NewAnalysisRepository(db, d),
		Interviews:   NewInterviewRepository(db, d),
		Courses:      NewCourseRepository(db, d),
		Achievements: NewAchievementRepository(db, d),
		closer:       db,
	}, nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	return string(data), err
}

func decodeList(data []byte) ([]string, error) {
	list := make([]string, 0)
	if len(data) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
