package seeder

import (
	"context"
	"fmt"
	"time"

	"profile-service/internal/database"
	"profile-service/internal/pkg/logger"
)

type Runner struct {
	Seeders []Seeder
	Logger  *logger.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	log := logger.OrNop(r.Logger)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder finished", "name", s.Name(), "took", time.Since(start))
	}
	return nil
}
