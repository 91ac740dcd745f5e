package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Directory resolves login names to users. A missing user is reported with
// found == false rather than an error.
type Directory interface {
	FindByUsername(ctx context.Context, username string) (u User, found bool, err error)
}
