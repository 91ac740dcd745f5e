package profile

import (
	"context"
	"io"
)

// Store persists profiles. FindByID reports a missing row with found == false.
// Save upserts information, skills and picture and returns the stored state;
// ratings are never written through it.
type Store interface {
	FindByID(ctx context.Context, id int64) (p Profile, found bool, err error)
	FindAll(ctx context.Context) ([]Profile, error)
	Save(ctx context.Context, p Profile) (Profile, error)
}

// RatingReader loads the ratings currently stored for one profile, oldest first.
type RatingReader interface {
	FindRatings(ctx context.Context, profileID int64) ([]Rating, error)
}

// PictureStore keeps decoded profile pictures under a target name.
type PictureStore interface {
	WriteDecoded(ctx context.Context, base64Data string, targetName string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
