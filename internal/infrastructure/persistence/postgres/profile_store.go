package postgres

import (
	"context"
	"fmt"

	"profile-service/internal/database"
	dbpostgres "profile-service/internal/database/postgres"
	"profile-service/internal/domain/profile"
)

const selectProfiles = `SELECT p.id, u.id, u.username, u.full_name, u.job_title,
		p.information, p.skills, p.profile_picture
	 FROM profiles p
	 JOIN users u ON u.id = p.id`

type ProfileStore struct {
	db database.DB
}

func NewProfileStore(db database.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) FindByID(ctx context.Context, id int64) (profile.Profile, bool, error) {
	return findByID(ctx, s.db, id)
}

func (s *ProfileStore) FindRatings(ctx context.Context, profileID int64) ([]profile.Rating, error) {
	return findRatings(ctx, s.db, profileID)
}

func (s *ProfileStore) FindAll(ctx context.Context) ([]profile.Profile, error) {
	rows, err := s.db.Query(ctx, selectProfiles+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	index := make(map[int64]int)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ratings, err := s.db.Query(ctx,
		`SELECT id, profile_id, rating_source_username, created_at
		 FROM ratings
		 ORDER BY profile_id ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer ratings.Close()

	for ratings.Next() {
		var r profile.Rating
		if err := ratings.Scan(&r.ID, &r.ProfileID, &r.SourceUsername, &r.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[r.ProfileID]; ok {
			out[i].Ratings = append(out[i].Ratings, r)
		}
	}
	if err := ratings.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Save upserts the editable columns of p and returns the stored row.
func (s *ProfileStore) Save(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID <= 0 {
		return profile.Profile{}, profile.NewIdentifierError(fmt.Sprint(p.ID))
	}
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	var saved profile.Profile
	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO profiles (id, information, skills, profile_picture)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO UPDATE SET
				information = EXCLUDED.information,
				skills = EXCLUDED.skills,
				profile_picture = EXCLUDED.profile_picture,
				updated_at = now()`,
			p.ID, p.Information, skills, p.Picture,
		)
		if err != nil {
			if dbpostgres.IsForeignKeyViolation(err) {
				return fmt.Errorf("save profile %d: %w", p.ID, profile.ErrProfileNotFound)
			}
			return err
		}

		got, found, err := findByID(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("save profile %d: %w", p.ID, profile.ErrProfileNotFound)
		}
		saved = got
		return nil
	})
	if err != nil {
		return profile.Profile{}, err
	}
	return saved, nil
}

func findByID(ctx context.Context, q database.Querier, id int64) (profile.Profile, bool, error) {
	row := q.QueryRow(ctx, selectProfiles+` WHERE p.id = $1`, id)
	p, err := scanProfile(row)
	if err != nil {
		if isNoRows(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, err
	}

	ratings, err := findRatings(ctx, q, id)
	if err != nil {
		return profile.Profile{}, false, err
	}
	p.Ratings = ratings
	return p, true, nil
}

func findRatings(ctx context.Context, q database.Querier, profileID int64) ([]profile.Rating, error) {
	rows, err := q.Query(ctx,
		`SELECT id, profile_id, rating_source_username, created_at
		 FROM ratings
		 WHERE profile_id = $1
		 ORDER BY id ASC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []profile.Rating
	for rows.Next() {
		var r profile.Rating
		if err := rows.Scan(&r.ID, &r.ProfileID, &r.SourceUsername, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID,
		&p.User.ID,
		&p.User.Username,
		&p.User.FullName,
		&p.User.JobTitle,
		&p.Information,
		&p.Skills,
		&p.Picture,
	)
	return p, err
}
