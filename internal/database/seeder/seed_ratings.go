package seeder

import (
	"context"
	"fmt"

	"profile-service/internal/database"
)

type RatingsSeeder struct{}

func (RatingsSeeder) Name() string { return "ratings" }

func (RatingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "ratings", "id", "profile_id", "rating_source_username"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, r := range demoRatings {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO ratings (profile_id, rating_source_username)
				 SELECT p.id, $2
				 FROM profiles p
				 JOIN users u ON u.id = p.id
				 WHERE u.username = $1
				   AND NOT EXISTS (
					SELECT 1 FROM ratings r
					WHERE r.profile_id = p.id AND r.rating_source_username = $2
				   )`,
				r.Target, r.Source,
			)
			if err != nil {
				return fmt.Errorf("rating %s->%s: %w", r.Source, r.Target, err)
			}
		}
		return nil
	})
}
