package seeder

import (
	"context"
	"fmt"
	"strings"

	"profile-service/internal/database"

	"golang.org/x/crypto/bcrypt"
)

const DefaultDemoPassword = "changeme123"

// UsersSeeder upserts the demo accounts. Every account shares Password.
type UsersSeeder struct {
	Password string
}

func (UsersSeeder) Name() string { return "users" }

func (s UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "username", "full_name", "job_title", "password_hash"); err != nil {
		return err
	}

	hash, err := hashPassword(s.Password)
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, u := range demoUsers {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO users (username, full_name, job_title, password_hash)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (username) DO UPDATE SET
					full_name = EXCLUDED.full_name,
					job_title = EXCLUDED.job_title`,
				u.Username, u.FullName, u.JobTitle, hash,
			)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
		}
		return nil
	})
}

func hashPassword(pw string) (string, error) {
	pw = strings.TrimSpace(pw)
	if pw == "" {
		pw = DefaultDemoPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
