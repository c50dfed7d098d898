package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdesk/internal/domain/user"
	"certdesk/internal/shared/authorization"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

func storedUser(t *testing.T, id uint, name, password string) *user.User {
	u, err := user.ReconstructUser(id, name, "hashed:"+password)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_RequesterLogin(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*user.User, error) {
			return storedUser(t, 7, name, "correct horse"), nil
		},
	}
	var tokenRole authorization.UserRole
	tokens := &mockTokenService{
		GenerateFunc: func(userID uint, role authorization.UserRole) (*TokenPair, error) {
			tokenRole = role
			return &TokenPair{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 900}, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockCertifierRepository{}, &mockPasswordHasher{}, tokens, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Name: "alice", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "requester", result.Role)
	assert.Equal(t, authorization.RoleRequester, tokenRole)
	assert.Equal(t, "at", result.AccessToken)
}

func TestLoginUseCase_Execute_CertifierRole(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*user.User, error) {
			return storedUser(t, 2, name, "pw-longer"), nil
		},
	}
	certifierRepo := &mockCertifierRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*user.Certifier, error) {
			c, err := user.ReconstructCertifier(1, userID)
			require.NoError(t, err)
			return c, nil
		},
	}

	uc := NewLoginUseCase(userRepo, certifierRepo, &mockPasswordHasher{}, &mockTokenService{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Name: "inspector", Password: "pw-longer"})
	require.NoError(t, err)
	assert.Equal(t, "certifier", result.Role)
}

func TestLoginUseCase_Execute_BadCredentials(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*user.User, error) {
			return storedUser(t, 7, name, "right"), nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockCertifierRepository{}, &mockPasswordHasher{}, &mockTokenService{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Name: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAppError(err))

	// Unknown name yields the identical message.
	uc2 := NewLoginUseCase(&mockUserRepository{}, &mockCertifierRepository{}, &mockPasswordHasher{}, &mockTokenService{}, logger.NewLogger())
	_, err2 := uc2.Execute(context.Background(), LoginCommand{Name: "ghost", Password: "whatever"})
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return storedUser(t, userID, "alice", "pw"), nil
		},
	}
	tokens := &mockTokenService{
		VerifyRefreshFunc: func(token string) (*TokenClaims, error) {
			assert.Equal(t, "good-refresh", token)
			return &TokenClaims{UserID: 7, Role: authorization.RoleRequester}, nil
		},
	}

	uc := NewRefreshTokenUseCase(userRepo, tokens, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "good-refresh"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.NotEmpty(t, result.AccessToken)
}

func TestRefreshTokenUseCase_Execute_InvalidToken(t *testing.T) {
	tokens := &mockTokenService{
		VerifyRefreshFunc: func(token string) (*TokenClaims, error) {
			return nil, fmt.Errorf("signature mismatch")
		},
	}

	uc := NewRefreshTokenUseCase(&mockUserRepository{}, tokens, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "tampered"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAppError(err))
}

func TestRefreshTokenUseCase_Execute_DeletedAccount(t *testing.T) {
	tokens := &mockTokenService{
		VerifyRefreshFunc: func(token string) (*TokenClaims, error) {
			return &TokenClaims{UserID: 404, Role: authorization.RoleRequester}, nil
		},
	}

	uc := NewRefreshTokenUseCase(&mockUserRepository{}, tokens, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "orphan"})
	require.Error(t, err)
}
