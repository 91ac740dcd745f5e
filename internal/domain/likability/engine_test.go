package likability

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkProfile(id int64, username string, raters ...string) profile.Profile {
	p := profile.Profile{
		ID:   id,
		User: user.User{ID: id, Username: username, FullName: "Full " + username, JobTitle: "Job " + username},
	}
	for i, r := range raters {
		p.Ratings = append(p.Ratings, profile.Rating{ID: int64(i + 1), ProfileID: id, SourceUsername: r})
	}
	return p
}

func TestCompute_Scenario(t *testing.T) {
	pic := "3.jpg"
	p1 := mkProfile(1, "U1")
	p2 := mkProfile(2, "U2")
	p3 := mkProfile(3, "U3", "U1")
	p3.Picture = &pic
	p4 := mkProfile(4, "U4", "U9")

	got := Compute(p1, []profile.Profile{p1, p2, p3, p4})

	require.Len(t, got, 3)
	assert.Equal(t, profile.LikableProfile{ProfileID: 2, FullName: "Full U2", JobTitle: "Job U2", AbleToLike: true}, got[0])
	assert.Equal(t, int64(3), got[1].ProfileID)
	assert.False(t, got[1].AbleToLike)
	require.NotNil(t, got[1].Picture)
	assert.Equal(t, "3.jpg", *got[1].Picture)
	assert.Equal(t, profile.LikableProfile{ProfileID: 4, FullName: "Full U4", JobTitle: "Job U4", AbleToLike: true}, got[2])
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(mkProfile(1, "U1"), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCompute_OnlyViewer(t *testing.T) {
	p1 := mkProfile(1, "U1", "U2")
	assert.Empty(t, Compute(p1, []profile.Profile{p1}))
}

func TestCompute_MixedRatersStillBlocked(t *testing.T) {
	viewer := mkProfile(1, "U1")
	target := mkProfile(2, "U2", "U5", "U1", "U6")

	got := Compute(viewer, []profile.Profile{target})
	require.Len(t, got, 1)
	assert.False(t, got[0].AbleToLike)
}

func TestCompute_PictureIsCopied(t *testing.T) {
	pic := "2.jpg"
	target := mkProfile(2, "U2")
	target.Picture = &pic

	got := Compute(mkProfile(1, "U1"), []profile.Profile{target})
	*got[0].Picture = "changed"
	assert.Equal(t, "2.jpg", pic)
}

// snapshot is a randomly generated viewer plus profile set.
type snapshot struct {
	Viewer profile.Profile
	All    []profile.Profile
}

func (snapshot) Generate(r *rand.Rand, _ int) reflect.Value {
	usernames := []string{"U1", "U2", "U3", "U4", "U5", "U6"}
	n := 1 + r.Intn(8)
	all := make([]profile.Profile, 0, n)
	for i := 0; i < n; i++ {
		var raters []string
		for j := r.Intn(4); j > 0; j-- {
			raters = append(raters, usernames[r.Intn(len(usernames))])
		}
		all = append(all, mkProfile(int64(i+1), fmt.Sprintf("P%d", i+1), raters...))
	}
	viewer := all[r.Intn(len(all))]
	viewer.User.Username = usernames[r.Intn(len(usernames))]
	r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return reflect.ValueOf(snapshot{Viewer: viewer, All: all})
}

func TestCompute_Properties(t *testing.T) {
	excludesViewer := func(s snapshot) bool {
		for _, lp := range Compute(s.Viewer, s.All) {
			if lp.ProfileID == s.Viewer.ID {
				return false
			}
		}
		return true
	}

	everyOtherProfileClassified := func(s snapshot) bool {
		got := Compute(s.Viewer, s.All)
		byID := make(map[int64]profile.LikableProfile, len(got))
		for _, lp := range got {
			byID[lp.ProfileID] = lp
		}
		if len(got) != len(s.All)-1 {
			return false
		}
		for _, p := range s.All {
			if p.ID == s.Viewer.ID {
				continue
			}
			lp, ok := byID[p.ID]
			if !ok {
				return false
			}
			ratedByViewer := false
			for _, r := range p.Ratings {
				if r.SourceUsername == s.Viewer.User.Username {
					ratedByViewer = true
				}
			}
			switch {
			case len(p.Ratings) == 0 && !lp.AbleToLike:
				return false
			case ratedByViewer && lp.AbleToLike:
				return false
			case len(p.Ratings) > 0 && !ratedByViewer && !lp.AbleToLike:
				return false
			}
		}
		return true
	}

	idempotent := func(s snapshot) bool {
		return reflect.DeepEqual(Compute(s.Viewer, s.All), Compute(s.Viewer, s.All))
	}

	cfg := &quick.Config{MaxCount: 500}
	require.NoError(t, quick.Check(excludesViewer, cfg))
	require.NoError(t, quick.Check(everyOtherProfileClassified, cfg))
	require.NoError(t, quick.Check(idempotent, cfg))
}

func TestAlreadyRated(t *testing.T) {
	assert.False(t, AlreadyRated("U1", mkProfile(2, "U2")))
	assert.False(t, AlreadyRated("U1", mkProfile(2, "U2", "U3")))
	assert.True(t, AlreadyRated("U1", mkProfile(2, "U2", "U3", "U1")))
}
