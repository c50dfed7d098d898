package usecases

import (
	"context"
	"errors"

	"certdesk/internal/domain/capacity"
	"certdesk/internal/domain/user"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Password string
	Region   int
	Location string
}

type RegisterResult struct {
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	Region   int    `json:"region"`
	Location string `json:"location"`
}

// RegisterUseCase creates a requester account. The user row and the requester
// profile are written in one transaction; a failure on either leaves no
// half-registered account behind.
type RegisterUseCase struct {
	userRepo      user.UserRepository
	requesterRepo user.RequesterRepository
	hasher        PasswordHasher
	regions       *capacity.Regions
	txManager     TransactionManager
	logger        logger.Interface
}

func NewRegisterUseCase(
	userRepo user.UserRepository,
	requesterRepo user.RequesterRepository,
	hasher PasswordHasher,
	regions *capacity.Regions,
	txManager TransactionManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:      userRepo,
		requesterRepo: requesterRepo,
		hasher:        hasher,
		regions:       regions,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to process registration")
	}

	var newUser *user.User
	var requester *user.Requester

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		newUser, err = user.NewUser(cmd.Name, hash)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.userRepo.Save(txCtx, newUser); err != nil {
			if errors.Is(err, user.ErrNameTaken) {
				return apperrors.NewConflictError("name already registered")
			}
			return err
		}

		requester, err = user.NewRequester(newUser.ID(), cmd.Region, cmd.Location)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		return uc.requesterRepo.Save(txCtx, requester)
	})
	if err != nil {
		uc.logger.Errorw("failed to register user", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(), "region", requester.Region())

	return &RegisterResult{
		UserID:   newUser.ID(),
		Name:     newUser.Name(),
		Region:   requester.Region(),
		Location: requester.Location(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if len(cmd.Name) == 0 {
		return apperrors.NewValidationError("name is required")
	}
	if len(cmd.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Location) == 0 {
		return apperrors.NewValidationError("location is required")
	}
	if !uc.regions.Known(cmd.Region) {
		return apperrors.NewValidationError("unknown region")
	}
	return nil
}
