package dto

import (
	"time"

	"profile-service/internal/domain/profile"
)

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
}

type RatingResponse struct {
	ID             int64     `json:"id"`
	SourceUsername string    `json:"source_username"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID          int64            `json:"id"`
	User        UserResponse     `json:"user"`
	Information string           `json:"information"`
	Skills      []string         `json:"skills"`
	Picture     *string          `json:"picture"`
	Ratings     []RatingResponse `json:"ratings"`
}

type LikableProfileResponse struct {
	ProfileID  int64   `json:"profile_id"`
	Picture    *string `json:"picture"`
	FullName   string  `json:"full_name"`
	JobTitle   string  `json:"job_title"`
	AbleToLike bool    `json:"able_to_like"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	ratings := make([]RatingResponse, 0, len(p.Ratings))
	for _, r := range p.Ratings {
		ratings = append(ratings, RatingResponse{
			ID:             r.ID,
			SourceUsername: r.SourceUsername,
			CreatedAt:      r.CreatedAt,
		})
	}
	return ProfileResponse{
		ID: p.ID,
		User: UserResponse{
			ID:       p.User.ID,
			Username: p.User.Username,
			FullName: p.User.FullName,
			JobTitle: p.User.JobTitle,
		},
		Information: p.Information,
		Skills:      skills,
		Picture:     p.Picture,
		Ratings:     ratings,
	}
}

func NewLikableProfilesResponse(in []profile.LikableProfile) []LikableProfileResponse {
	out := make([]LikableProfileResponse, 0, len(in))
	for _, lp := range in {
		out = append(out, LikableProfileResponse{
			ProfileID:  lp.ProfileID,
			Picture:    lp.Picture,
			FullName:   lp.FullName,
			JobTitle:   lp.JobTitle,
			AbleToLike: lp.AbleToLike,
		})
	}
	return out
}
