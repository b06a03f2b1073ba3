package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/raflytch/skillorbit-server/internal/config"
	"github.com/raflytch/skillorbit-server/internal/database"
	"github.com/raflytch/skillorbit-server/internal/domain"
)

// Store groups the four progress collections behind one backend.
type Store struct {
	Analyses     domain.AnalysisRepository
	Interviews   domain.InterviewRepository
	Courses      domain.CourseRepository
	Achievements domain.AchievementRepository

	closer io.Closer
}

// Open builds the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case config.StoreFile, "":
		return newFileStore(cfg.DataDir)
	case config.StorePostgres:
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store, err := newSQLStore(ctx, db, Postgres)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	case config.StoreSQLite:
		db, err := database.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store, err := newSQLStore(ctx, db, SQLite)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
