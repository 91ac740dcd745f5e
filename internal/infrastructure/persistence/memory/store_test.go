package memory

import (
	"context"
	"testing"

	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ profile.Store        = (*Store)(nil)
	_ profile.RatingReader = (*Store)(nil)
	_ user.Directory       = (*Store)(nil)
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.AddUser(user.User{ID: 1, Username: "u1", FullName: "User One", JobTitle: "Engineer"}))
	require.NoError(t, s.AddUser(user.User{ID: 2, Username: "u2", FullName: "User Two", JobTitle: "Designer"}))
	return s
}

func TestAddUser_Validation(t *testing.T) {
	s := seeded(t)

	assert.Error(t, s.AddUser(user.User{ID: 0, Username: "x"}))
	assert.Error(t, s.AddUser(user.User{ID: 3, Username: "  "}))
	assert.Error(t, s.AddUser(user.User{ID: 1, Username: "dup-id"}))
	assert.Error(t, s.AddUser(user.User{ID: 3, Username: "u1"}))
}

func TestFindByUsername(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	u, found, err := s.FindByUsername(ctx, "u2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2), u.ID)

	_, found, err = s.FindByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	_, err := s.AddRating(1, "u2")
	require.NoError(t, err)

	p, found, err := s.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, p.Ratings, 1)

	p.Ratings[0].SourceUsername = "tampered"
	p.Skills = append(p.Skills, "leak")

	again, _, _ := s.FindByID(ctx, 1)
	assert.Equal(t, "u2", again.Ratings[0].SourceUsername)
	assert.Empty(t, again.Skills)

	_, found, err = s.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindAll_OrderedByID(t *testing.T) {
	s := seeded(t)
	require.NoError(t, s.AddUser(user.User{ID: 7, Username: "u7"}))

	all, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 7}, []int64{all[0].ID, all[1].ID, all[2].ID})
}

func TestSave_KeepsOwnerAndRatings(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	_, err := s.AddRating(1, "u2")
	require.NoError(t, err)

	pic := "1.jpg"
	saved, err := s.Save(ctx, profile.Profile{
		ID:          1,
		User:        user.User{ID: 1, Username: "spoofed"},
		Information: "hi",
		Skills:      []string{"Go"},
		Picture:     &pic,
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", saved.User.Username)
	assert.Len(t, saved.Ratings, 1)
	assert.Equal(t, "hi", saved.Information)
	assert.Equal(t, []string{"Go"}, saved.Skills)
	require.NotNil(t, saved.Picture)
	assert.Equal(t, "1.jpg", *saved.Picture)
}

func TestSave_Unknown(t *testing.T) {
	s := seeded(t)
	_, err := s.Save(context.Background(), profile.Profile{ID: 42})
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestAddRating_Unknown(t *testing.T) {
	s := seeded(t)
	_, err := s.AddRating(42, "u1")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestFindRatings(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	_, err := s.AddRating(1, "u2")
	require.NoError(t, err)
	_, err = s.AddRating(1, "u3")
	require.NoError(t, err)

	got, err := s.FindRatings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u2", got[0].SourceUsername)
	assert.Equal(t, "u3", got[1].SourceUsername)

	got[0].SourceUsername = "mutated"
	again, err := s.FindRatings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "u2", again[0].SourceUsername)

	none, err := s.FindRatings(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}
