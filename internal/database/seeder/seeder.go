package seeder

import (
	"context"

	"profile-service/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
