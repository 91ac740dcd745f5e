package dto

import (
	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"
)

// UpdateProfileRequest mirrors the full profile document clients send.
// id, user and ratings are accepted but never trusted.
type UpdateProfileRequest struct {
	ID          *int64          `json:"id"`
	User        *UserRequest    `json:"user"`
	Information *string         `json:"information"`
	Skills      []string        `json:"skills"`
	Picture     *string         `json:"picture"`
	Ratings     []RatingRequest `json:"ratings"`
}

type UserRequest struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
}

type RatingRequest struct {
	ID             int64  `json:"id"`
	SourceUsername string `json:"source_username"`
}

func (r UpdateProfileRequest) HasChanges() bool {
	return r.Information != nil || r.Skills != nil || r.Picture != nil
}

func (r UpdateProfileRequest) Submission() profile.Submission {
	sub := profile.Submission{
		ID:          r.ID,
		Information: r.Information,
		Skills:      r.Skills,
		Picture:     r.Picture,
	}
	if r.User != nil {
		sub.User = &user.User{
			ID:       r.User.ID,
			Username: r.User.Username,
			FullName: r.User.FullName,
			JobTitle: r.User.JobTitle,
		}
	}
	for _, rt := range r.Ratings {
		sub.Ratings = append(sub.Ratings, profile.Rating{ID: rt.ID, SourceUsername: rt.SourceUsername})
	}
	return sub
}
