package usecases

import (
	"context"

	"certdesk/internal/shared/authorization"
)

// TransactionManager runs a unit of work inside a database transaction.
// Registration creates the account and its requester profile atomically.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type TokenClaims struct {
	UserID uint
	Role   authorization.UserRole
}

// TokenService issues and validates the JWT pair used by the HTTP API.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
	VerifyRefresh(token string) (*TokenClaims, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginResult, error)
}
