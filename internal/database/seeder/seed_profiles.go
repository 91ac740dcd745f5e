package seeder

import (
	"context"
	"fmt"

	"profile-service/internal/database"
)

type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

// Run creates a profile for every demo user that lacks one. Existing
// profiles are left alone so edits survive a reseed.
func (ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "profiles", "id", "information", "skills", "profile_picture"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, u := range demoUsers {
			skills := u.Skills
			if skills == nil {
				skills = []string{}
			}
			_, err := tx.Exec(
				ctx,
				`INSERT INTO profiles (id, information, skills)
				 SELECT id, $2, $3 FROM users WHERE username = $1
				 ON CONFLICT (id) DO NOTHING`,
				u.Username, u.Information, skills,
			)
			if err != nil {
				return fmt.Errorf("profile %s: %w", u.Username, err)
			}
		}
		return nil
	})
}
