package seeder

import (
	"context"
	"fmt"

	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"
	"profile-service/internal/infrastructure/persistence/memory"
)

// SeedMemory loads the demo data into an in-memory store. Ids are assigned
// in declaration order starting at 1.
func SeedMemory(ctx context.Context, s *memory.Store) error {
	if s == nil {
		return fmt.Errorf("nil store")
	}
	for i, u := range demoUsers {
		id := int64(i + 1)
		if err := s.AddUser(user.User{ID: id, Username: u.Username, FullName: u.FullName, JobTitle: u.JobTitle}); err != nil {
			return err
		}
		if _, err := s.Save(ctx, profile.Profile{ID: id, Information: u.Information, Skills: u.Skills}); err != nil {
			return err
		}
	}
	for _, r := range demoRatings {
		target, found, err := s.FindByUsername(ctx, r.Target)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("rating target %s: %w", r.Target, user.ErrNotFound)
		}
		if _, err := s.AddRating(target.ID, r.Source); err != nil {
			return err
		}
	}
	return nil
}
