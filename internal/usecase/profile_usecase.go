package usecase

import (
	"context"
	"io"

	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"
	"profile-service/internal/pkg/logger"
	ucprofile "profile-service/internal/usecase/profile"
)

type ProfileUsecase interface {
	FindProfileByIdentifier(ctx context.Context, id int64) (profile.Profile, error)
	GetMyProfile(ctx context.Context, username string) (profile.Profile, error)
	UpdateProfile(ctx context.Context, username string, sub profile.Submission) (profile.Profile, error)
	UpdateProfileByID(ctx context.Context, username string, targetID int64, sub profile.Submission) (profile.Profile, error)
	GetLikableProfiles(ctx context.Context, username string) ([]profile.LikableProfile, error)
	SaveProfile(ctx context.Context, p profile.Profile) (profile.Profile, error)
	OpenPicture(ctx context.Context, id int64) (io.ReadCloser, error)
}

func NewProfileUsecase(
	users user.Directory,
	profiles profile.Store,
	pictures profile.PictureStore,
	notifier ucprofile.Notifier,
	log *logger.Logger,
) ProfileUsecase {
	return ucprofile.NewService(users, profiles, pictures, notifier, log)
}
