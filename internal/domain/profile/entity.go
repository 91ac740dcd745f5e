package profile

import (
	"time"

	"profile-service/internal/domain/user"
)

// Profile shares its ID with the owning user.
type Profile struct {
	ID          int64
	User        user.User
	Information string
	Skills      []string
	Picture     *string
	Ratings     []Rating
}

// Rating records that SourceUsername liked the profile ProfileID.
type Rating struct {
	ID             int64
	ProfileID      int64
	SourceUsername string
	CreatedAt      time.Time
}

// LikableProfile is a per-request view; it is never stored.
type LikableProfile struct {
	ProfileID  int64
	Picture    *string
	FullName   string
	JobTitle   string
	AbleToLike bool
}

func (p Profile) Clone() Profile {
	out := p
	if p.Skills != nil {
		out.Skills = append([]string(nil), p.Skills...)
	}
	if p.Picture != nil {
		pic := *p.Picture
		out.Picture = &pic
	}
	if p.Ratings != nil {
		out.Ratings = append([]Rating(nil), p.Ratings...)
	}
	return out
}
