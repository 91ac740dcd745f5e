package profile

import (
	"strconv"

	"profile-service/internal/domain/user"
)

// Submission is a client-supplied update. Nil fields mean "leave unchanged".
// ID, User and Ratings are accepted from the wire only to be overwritten by
// Guard.
type Submission struct {
	ID          *int64
	User        *user.User
	Information *string
	Skills      []string
	Picture     *string
	Ratings     []Rating
}

func PictureName(id int64) string {
	return strconv.FormatInt(id, 10) + ".jpg"
}

// Guard rewrites the identity-bearing fields of sub so they describe the
// caller's own profile. Whatever the client claimed is discarded.
func Guard(sub Submission, caller user.User, storedRatings []Rating) Submission {
	id := caller.ID
	owner := caller
	sub.ID = &id
	sub.User = &owner
	sub.Ratings = append([]Rating(nil), storedRatings...)
	return sub
}

// OwnedBy confirms a guarded submission points at the caller. After Guard it
// is always true.
func OwnedBy(sub Submission, caller user.User) bool {
	return sub.ID != nil && *sub.ID == caller.ID &&
		sub.User != nil && sub.User.Username == caller.Username
}

// Merge applies the non-nil fields of sub onto stored. pictureName is set as
// the picture reference only when non-empty, i.e. after the picture has been
// decoded and written.
func Merge(stored Profile, sub Submission, pictureName string) Profile {
	out := stored.Clone()
	if sub.Information != nil {
		out.Information = *sub.Information
	}
	if sub.Skills != nil {
		out.Skills = append([]string{}, sub.Skills...)
	}
	if pictureName != "" {
		name := pictureName
		out.Picture = &name
	}
	return out
}
