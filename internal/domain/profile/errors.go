package profile

import (
	"errors"
	"fmt"
)

var (
	ErrIdentifierMissing = errors.New("profile identifier missing")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrForbidden         = errors.New("profile belongs to another user")
	ErrInvalidPicture    = errors.New("invalid picture payload")
	ErrPictureNotFound   = errors.New("picture not found")
)

// IdentifierError names the identifier that could not be used for a lookup.
type IdentifierError struct {
	Raw string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("profile ID '%s' doesn't exist", e.Raw)
}

func (e *IdentifierError) Unwrap() error {
	return ErrIdentifierMissing
}

func NewIdentifierError(raw string) error {
	return &IdentifierError{Raw: raw}
}
