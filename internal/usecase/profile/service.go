package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"profile-service/internal/domain/likability"
	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"
	"profile-service/internal/pkg/logger"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// Notifier is told about every successful profile update.
type Notifier interface {
	NotifyProfileUpdated(profileID int64)
}

type Service struct {
	users    user.Directory
	profiles profile.Store
	pictures profile.PictureStore
	notifier Notifier
	logger   *logger.Logger
}

func NewService(users user.Directory, profiles profile.Store, pictures profile.PictureStore, notifier Notifier, log *logger.Logger) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		pictures: pictures,
		notifier: notifier,
		logger:   logger.OrNop(log).With("service", "ProfileService"),
	}
}

func (s *Service) FindProfileByIdentifier(ctx context.Context, id int64) (profile.Profile, error) {
	if id <= 0 {
		return profile.Profile{}, profile.NewIdentifierError(strconv.FormatInt(id, 10))
	}
	return s.load(ctx, id)
}

func (s *Service) GetMyProfile(ctx context.Context, username string) (profile.Profile, error) {
	caller, err := s.resolveCaller(ctx, username)
	if err != nil {
		return profile.Profile{}, err
	}
	return s.load(ctx, caller.ID)
}

// UpdateProfile applies sub to the caller's own profile. Identity fields in
// sub are ignored.
func (s *Service) UpdateProfile(ctx context.Context, username string, sub profile.Submission) (profile.Profile, error) {
	caller, err := s.resolveCaller(ctx, username)
	if err != nil {
		return profile.Profile{}, err
	}
	return s.update(ctx, caller, sub)
}

// UpdateProfileByID is UpdateProfile addressed by path id. Any id other than
// the caller's own is rejected before anything is read or written.
func (s *Service) UpdateProfileByID(ctx context.Context, username string, targetID int64, sub profile.Submission) (profile.Profile, error) {
	if targetID <= 0 {
		return profile.Profile{}, profile.NewIdentifierError(strconv.FormatInt(targetID, 10))
	}
	caller, err := s.resolveCaller(ctx, username)
	if err != nil {
		return profile.Profile{}, err
	}
	if targetID != caller.ID {
		s.logger.Warn("profile update rejected", "caller_id", caller.ID, "target_id", targetID)
		return profile.Profile{}, profile.ErrForbidden
	}
	return s.update(ctx, caller, sub)
}

func (s *Service) GetLikableProfiles(ctx context.Context, username string) ([]profile.LikableProfile, error) {
	caller, err := s.resolveCaller(ctx, username)
	if err != nil {
		return nil, err
	}
	viewer, err := s.load(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	viewer.User = caller

	all, err := s.profiles.FindAll(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", "error", err)
		return nil, fmt.Errorf("%w: list profiles", ErrInternal)
	}
	return likability.Compute(viewer, all), nil
}

// SaveProfile persists p as given. It performs no identity checks, so p must
// come from a caller that already owns it.
func (s *Service) SaveProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID <= 0 {
		return profile.Profile{}, profile.NewIdentifierError(strconv.FormatInt(p.ID, 10))
	}
	saved, err := s.profiles.Save(ctx, p)
	if err != nil {
		return profile.Profile{}, s.storeError("save profile", p.ID, err)
	}
	return saved, nil
}

// OpenPicture streams the stored picture of profile id. The caller closes
// the reader.
func (s *Service) OpenPicture(ctx context.Context, id int64) (io.ReadCloser, error) {
	p, err := s.FindProfileByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Picture == nil || strings.TrimSpace(*p.Picture) == "" {
		return nil, profile.ErrPictureNotFound
	}
	rc, err := s.pictures.Open(ctx, *p.Picture)
	if err != nil {
		if errors.Is(err, profile.ErrPictureNotFound) {
			return nil, err
		}
		s.logger.Error("open picture failed", "profile_id", id, "error", err)
		return nil, fmt.Errorf("%w: open picture", ErrInternal)
	}
	return rc, nil
}

func (s *Service) update(ctx context.Context, caller user.User, sub profile.Submission) (profile.Profile, error) {
	stored, err := s.load(ctx, caller.ID)
	if err != nil {
		return profile.Profile{}, err
	}

	guarded := profile.Guard(sub, caller, stored.Ratings)
	if !profile.OwnedBy(guarded, caller) {
		// unreachable after Guard
		return profile.Profile{}, profile.ErrForbidden
	}

	var pictureName string
	if guarded.Picture != nil {
		name := profile.PictureName(caller.ID)
		if err := s.pictures.WriteDecoded(ctx, *guarded.Picture, name); err != nil {
			if errors.Is(err, profile.ErrInvalidPicture) {
				return profile.Profile{}, err
			}
			s.logger.Error("write picture failed", "profile_id", caller.ID, "error", err)
			return profile.Profile{}, fmt.Errorf("%w: write picture", ErrInternal)
		}
		pictureName = name
	}

	saved, err := s.profiles.Save(ctx, profile.Merge(stored, guarded, pictureName))
	if err != nil {
		return profile.Profile{}, s.storeError("save profile", caller.ID, err)
	}

	if s.notifier != nil {
		s.notifier.NotifyProfileUpdated(saved.ID)
	}
	s.logger.Info("profile updated", "profile_id", saved.ID, "picture_changed", pictureName != "")
	return saved, nil
}

func (s *Service) resolveCaller(ctx context.Context, username string) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.User{}, ErrUnauthorized
	}
	u, found, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("resolve user failed", "username", username, "error", err)
		return user.User{}, fmt.Errorf("%w: resolve user", ErrInternal)
	}
	if !found {
		return user.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, user.ErrNotFound)
	}
	return u, nil
}

func (s *Service) load(ctx context.Context, id int64) (profile.Profile, error) {
	p, found, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return profile.Profile{}, s.storeError("find profile", id, err)
	}
	if !found {
		return profile.Profile{}, fmt.Errorf("profile %d: %w", id, profile.ErrProfileNotFound)
	}
	return p, nil
}

func (s *Service) storeError(op string, id int64, err error) error {
	if errors.Is(err, profile.ErrProfileNotFound) || errors.Is(err, profile.ErrIdentifierMissing) {
		return err
	}
	s.logger.Error(op+" failed", "profile_id", id, "error", err)
	return fmt.Errorf("%w: %s", ErrInternal, op)
}
