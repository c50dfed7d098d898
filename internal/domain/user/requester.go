package user

import "fmt"

// Requester binds a user to a region and location. The region decides which
// slot ledger the requester's task transitions touch, resolved fresh on every
// transition.
type Requester struct {
	id       uint
	userID   uint
	region   int
	location string
}

func NewRequester(userID uint, region int, location string) (*Requester, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(location) == 0 {
		return nil, fmt.Errorf("location is required")
	}

	return &Requester{
		userID:   userID,
		region:   region,
		location: location,
	}, nil
}

func ReconstructRequester(id, userID uint, region int, location string) (*Requester, error) {
	if id == 0 {
		return nil, fmt.Errorf("requester ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Requester{
		id:       id,
		userID:   userID,
		region:   region,
		location: location,
	}, nil
}

func (r *Requester) ID() uint {
	return r.id
}

func (r *Requester) UserID() uint {
	return r.userID
}

func (r *Requester) Region() int {
	return r.region
}

func (r *Requester) Location() string {
	return r.location
}

func (r *Requester) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("requester ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("requester ID cannot be zero")
	}
	r.id = id
	return nil
}

// Certifier marks a user as having review rights over every task.
type Certifier struct {
	id     uint
	userID uint
}

func NewCertifier(userID uint) (*Certifier, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Certifier{userID: userID}, nil
}

func ReconstructCertifier(id, userID uint) (*Certifier, error) {
	if id == 0 {
		return nil, fmt.Errorf("certifier ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Certifier{id: id, userID: userID}, nil
}

func (c *Certifier) ID() uint {
	return c.id
}

func (c *Certifier) UserID() uint {
	return c.userID
}

func (c *Certifier) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("certifier ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("certifier ID cannot be zero")
	}
	c.id = id
	return nil
}
