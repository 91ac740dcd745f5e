package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"
)

// Store keeps users, profiles and ratings in process memory. It satisfies
// both user.Directory and profile.Store and is used for local runs and tests.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]user.User
	byName     map[string]int64
	profiles   map[int64]profile.Profile
	nextRating int64
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]user.User),
		byName:   make(map[string]int64),
		profiles: make(map[int64]profile.Profile),
		now:      time.Now,
	}
}

// AddUser registers u and gives it an empty profile.
func (s *Store) AddUser(u user.User) error {
	if u.ID <= 0 {
		return fmt.Errorf("user id must be positive: %d", u.ID)
	}
	name := strings.TrimSpace(u.Username)
	if name == "" {
		return fmt.Errorf("username is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return fmt.Errorf("user %d already exists", u.ID)
	}
	if _, ok := s.byName[name]; ok {
		return fmt.Errorf("username %q already exists", name)
	}
	u.Username = name
	s.users[u.ID] = u
	s.byName[name] = u.ID
	s.profiles[u.ID] = profile.Profile{ID: u.ID, User: u, Skills: []string{}}
	return nil
}

// AddRating records that sourceUsername liked profileID.
func (s *Store) AddRating(profileID int64, sourceUsername string) (profile.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[profileID]
	if !ok {
		return profile.Rating{}, fmt.Errorf("rate profile %d: %w", profileID, profile.ErrProfileNotFound)
	}
	s.nextRating++
	r := profile.Rating{
		ID:             s.nextRating,
		ProfileID:      profileID,
		SourceUsername: sourceUsername,
		CreatedAt:      s.now().UTC(),
	}
	p.Ratings = append(p.Ratings, r)
	s.profiles[profileID] = p
	return r, nil
}

func (s *Store) FindByUsername(_ context.Context, username string) (user.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[strings.TrimSpace(username)]
	if !ok {
		return user.User{}, false, nil
	}
	return s.users[id], true, nil
}

func (s *Store) FindByID(_ context.Context, id int64) (profile.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return profile.Profile{}, false, nil
	}
	return p.Clone(), true, nil
}

func (s *Store) FindRatings(_ context.Context, profileID int64) ([]profile.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[profileID]
	if !ok {
		return nil, nil
	}
	return append([]profile.Rating(nil), p.Ratings...), nil
}

func (s *Store) FindAll(_ context.Context) ([]profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Save overwrites information, skills and picture. The owner and ratings
// stay as stored.
func (s *Store) Save(_ context.Context, p profile.Profile) (profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.profiles[p.ID]
	if !ok {
		return profile.Profile{}, fmt.Errorf("save profile %d: %w", p.ID, profile.ErrProfileNotFound)
	}
	in := p.Clone()
	cur.Information = in.Information
	cur.Skills = in.Skills
	if cur.Skills == nil {
		cur.Skills = []string{}
	}
	cur.Picture = in.Picture
	s.profiles[p.ID] = cur
	return cur.Clone(), nil
}
