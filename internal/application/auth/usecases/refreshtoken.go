package usecases

import (
	"context"
	"errors"

	"certdesk/internal/domain/user"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenUseCase exchanges a valid refresh token for a new token pair.
// The account is re-read so tokens are not reissued for deleted users.
type RefreshTokenUseCase struct {
	userRepo user.UserRepository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.UserRepository,
	tokens TokenService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginResult, error) {
	if len(cmd.RefreshToken) == 0 {
		return nil, apperrors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	account, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("account no longer exists")
		}
		return nil, err
	}

	pair, err := uc.tokens.Generate(account.ID(), claims.Role)
	if err != nil {
		uc.logger.Errorw("failed to rotate tokens", "user_id", account.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}

	return &LoginResult{
		UserID:       account.ID(),
		Name:         account.Name(),
		Role:         string(claims.Role),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
