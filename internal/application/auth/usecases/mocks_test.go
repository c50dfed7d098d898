package usecases

import (
	"context"
	"fmt"

	"certdesk/internal/domain/user"
	"certdesk/internal/shared/authorization"
)

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	FindByIDFunc   func(ctx context.Context, userID uint) (*user.User, error)
	FindByNameFunc func(ctx context.Context, name string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) FindByName(ctx context.Context, name string) (*user.User, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, user.ErrUserNotFound
}

type mockRequesterRepository struct {
	SaveFunc         func(ctx context.Context, requester *user.Requester) error
	FindByIDFunc     func(ctx context.Context, requesterID uint) (*user.Requester, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*user.Requester, error)
}

func (m *mockRequesterRepository) Save(ctx context.Context, requester *user.Requester) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, requester)
	}
	return requester.SetID(1)
}

func (m *mockRequesterRepository) FindByID(ctx context.Context, requesterID uint) (*user.Requester, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, requesterID)
	}
	return nil, user.ErrRequesterNotFound
}

func (m *mockRequesterRepository) FindByUserID(ctx context.Context, userID uint) (*user.Requester, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, user.ErrRequesterNotFound
}

type mockCertifierRepository struct {
	SaveFunc         func(ctx context.Context, certifier *user.Certifier) error
	FindByUserIDFunc func(ctx context.Context, userID uint) (*user.Certifier, error)
	FindDefaultFunc  func(ctx context.Context) (*user.Certifier, error)
}

func (m *mockCertifierRepository) Save(ctx context.Context, certifier *user.Certifier) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, certifier)
	}
	return nil
}

func (m *mockCertifierRepository) FindByUserID(ctx context.Context, userID uint) (*user.Certifier, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, user.ErrCertifierNotFound
}

func (m *mockCertifierRepository) FindDefault(ctx context.Context) (*user.Certifier, error) {
	if m.FindDefaultFunc != nil {
		return m.FindDefaultFunc(ctx)
	}
	return nil, user.ErrCertifierNotFound
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc      func(userID uint, role authorization.UserRole) (*TokenPair, error)
	VerifyRefreshFunc func(token string) (*TokenClaims, error)
}

func (m *mockTokenService) Generate(userID uint, role authorization.UserRole) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return &TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}, nil
}

func (m *mockTokenService) VerifyRefresh(token string) (*TokenClaims, error) {
	if m.VerifyRefreshFunc != nil {
		return m.VerifyRefreshFunc(token)
	}
	return nil, fmt.Errorf("invalid token")
}

// mockTxManager runs the unit of work directly on the caller's context.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}
