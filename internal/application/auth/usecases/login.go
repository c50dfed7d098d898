package usecases

import (
	"context"
	"errors"

	"certdesk/internal/domain/user"
	"certdesk/internal/shared/authorization"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type LoginCommand struct {
	Name     string
	Password string
}

type LoginResult struct {
	UserID       uint
	Name         string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// LoginUseCase authenticates by name and password. The role embedded in the
// token pair is derived from the profile attached to the account: a certifier
// profile wins over the default requester role.
type LoginUseCase struct {
	userRepo      user.UserRepository
	certifierRepo user.CertifierRepository
	hasher        PasswordHasher
	tokens        TokenService
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	certifierRepo user.CertifierRepository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		certifierRepo: certifierRepo,
		hasher:        hasher,
		tokens:        tokens,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	account, err := uc.userRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a bad password so names cannot be probed.
			return nil, apperrors.NewUnauthorizedError("invalid name or password")
		}
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "name", cmd.Name)
		return nil, apperrors.NewUnauthorizedError("invalid name or password")
	}

	role := authorization.RoleRequester
	_, err = uc.certifierRepo.FindByUserID(ctx, account.ID())
	switch {
	case err == nil:
		role = authorization.RoleCertifier
	case errors.Is(err, user.ErrCertifierNotFound):
	default:
		return nil, err
	}

	pair, err := uc.tokens.Generate(account.ID(), role)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", account.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", role)

	return &LoginResult{
		UserID:       account.ID(),
		Name:         account.Name(),
		Role:         string(role),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
