package user

import (
	"context"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user lookup resolves to no row.
	ErrUserNotFound = fmt.Errorf("user not found")
	// ErrRequesterNotFound is returned when a user has no requester profile.
	ErrRequesterNotFound = fmt.Errorf("requester not found")
	// ErrCertifierNotFound is returned when no certifier row matches.
	ErrCertifierNotFound = fmt.Errorf("certifier not found")
	// ErrNameTaken is returned when the unique name constraint is violated.
	ErrNameTaken = fmt.Errorf("name already registered")
)

type UserRepository interface {
	// Save inserts the user; returns ErrNameTaken on a duplicate name.
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, userID uint) (*User, error)
	FindByName(ctx context.Context, name string) (*User, error)
}

type RequesterRepository interface {
	Save(ctx context.Context, requester *Requester) error
	FindByID(ctx context.Context, requesterID uint) (*Requester, error)
	FindByUserID(ctx context.Context, userID uint) (*Requester, error)
}

type CertifierRepository interface {
	Save(ctx context.Context, certifier *Certifier) error
	FindByUserID(ctx context.Context, userID uint) (*Certifier, error)
	// FindDefault returns the certifier assigned to new submissions
	// (the oldest certifier row).
	FindDefault(ctx context.Context) (*Certifier, error)
}
