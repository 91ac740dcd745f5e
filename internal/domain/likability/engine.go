package likability

import "profile-service/internal/domain/profile"

// Compute projects every profile except the viewer's own into a
// LikableProfile. A profile may be liked unless the viewer has already rated
// it; profiles with no ratings at all are therefore always likable. Input
// order is preserved.
func Compute(viewer profile.Profile, all []profile.Profile) []profile.LikableProfile {
	out := make([]profile.LikableProfile, 0, len(all))
	for _, p := range all {
		if p.ID == viewer.ID {
			continue
		}
		out = append(out, project(p, !AlreadyRated(viewer.User.Username, p)))
	}
	return out
}

// AlreadyRated reports whether username appears as the source of any rating
// on p.
func AlreadyRated(username string, p profile.Profile) bool {
	for _, r := range p.Ratings {
		if r.SourceUsername == username {
			return true
		}
	}
	return false
}

func project(p profile.Profile, ableToLike bool) profile.LikableProfile {
	lp := profile.LikableProfile{
		ProfileID:  p.ID,
		FullName:   p.User.FullName,
		JobTitle:   p.User.JobTitle,
		AbleToLike: ableToLike,
	}
	if p.Picture != nil {
		pic := *p.Picture
		lp.Picture = &pic
	}
	return lp
}
