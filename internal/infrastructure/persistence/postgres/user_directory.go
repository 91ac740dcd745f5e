package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"profile-service/internal/database"
	"profile-service/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type UserDirectory struct {
	db database.DB
}

func NewUserDirectory(db database.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) FindByUsername(ctx context.Context, username string) (user.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.User{}, false, nil
	}

	row := d.db.QueryRow(ctx,
		`SELECT id, username, full_name, job_title
		 FROM users
		 WHERE username = $1`,
		username,
	)

	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.JobTitle); err != nil {
		if isNoRows(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, err
	}
	return u, true, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
