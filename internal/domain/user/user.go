package user

import (
	"fmt"
)

// User is an account with a unique name. Role is not stored on the user row;
// it is derived from the presence of a requester or certifier row.
type User struct {
	id           uint
	name         string
	passwordHash string
}

func NewUser(name, passwordHash string) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		name:         name,
		passwordHash: passwordHash,
	}, nil
}

func ReconstructUser(id uint, name, passwordHash string) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &User{
		id:           id,
		name:         name,
		passwordHash: passwordHash,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
