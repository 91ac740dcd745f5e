package cache

import (
	"context"
	"strconv"

	"profile-service/internal/domain/profile"
	"profile-service/internal/pkg/logger"
)

func profileKey(id int64) string {
	return "profile:" + strconv.FormatInt(id, 10)
}

// CachedProfileStore reads single profiles through Redis. Only the profile
// row and its owner are cached; ratings are written elsewhere, so they are
// loaded from ratings on every read. FindAll always hits the underlying store.
type CachedProfileStore struct {
	next    profile.Store
	ratings profile.RatingReader
	cache   *Redis
	logger  *logger.Logger
}

func NewCachedProfileStore(next profile.Store, ratings profile.RatingReader, cache *Redis, log *logger.Logger) *CachedProfileStore {
	return &CachedProfileStore{next: next, ratings: ratings, cache: cache, logger: logger.OrNop(log)}
}

func (s *CachedProfileStore) FindByID(ctx context.Context, id int64) (profile.Profile, bool, error) {
	key := profileKey(id)

	var cached profile.Profile
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.logger.Debug("profile cache read failed", "key", key, "error", err)
	}
	if hit && err == nil {
		ratings, err := s.ratings.FindRatings(ctx, id)
		if err != nil {
			return profile.Profile{}, false, err
		}
		cached.Ratings = ratings
		return cached, true, nil
	}

	p, found, err := s.next.FindByID(ctx, id)
	if err != nil || !found {
		return p, found, err
	}
	row := p.Clone()
	row.Ratings = nil
	if err := s.cache.SetJSON(ctx, key, row, 0); err != nil {
		s.logger.Debug("profile cache write failed", "key", key, "error", err)
	}
	return p, true, nil
}

func (s *CachedProfileStore) FindAll(ctx context.Context) ([]profile.Profile, error) {
	return s.next.FindAll(ctx)
}

func (s *CachedProfileStore) Save(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	saved, err := s.next.Save(ctx, p)
	if err != nil {
		return saved, err
	}
	// drop rather than overwrite so a concurrent reader cannot repopulate a stale row
	if err := s.cache.Delete(ctx, profileKey(p.ID)); err != nil {
		s.logger.Warn("profile cache invalidation failed", "profile_id", p.ID, "error", err)
	}
	return saved, nil
}
