package usecases

import (
	"context"
	"errors"

	"certdesk/internal/application/task/dto"
	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	"certdesk/internal/shared/authorization"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
	"certdesk/internal/shared/services/markdown"
)

type GetTaskQuery struct {
	TaskID uint
	UserID uint
	Role   authorization.UserRole
}

// GetTaskUseCase loads a single task. Requesters may only read their own
// tasks; certifiers may read any.
type GetTaskUseCase struct {
	taskRepo      task.TaskRepository
	requesterRepo user.RequesterRepository
	markdown      markdown.Service
	logger        logger.Interface
}

func NewGetTaskUseCase(
	taskRepo task.TaskRepository,
	requesterRepo user.RequesterRepository,
	markdown markdown.Service,
	logger logger.Interface,
) *GetTaskUseCase {
	return &GetTaskUseCase{
		taskRepo:      taskRepo,
		requesterRepo: requesterRepo,
		markdown:      markdown,
		logger:        logger,
	}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, query GetTaskQuery) (*dto.TaskDTO, error) {
	t, err := uc.taskRepo.FindByID(ctx, query.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, err
	}

	if err := checkTaskAccess(ctx, uc.requesterRepo, query.UserID, query.Role, t); err != nil {
		return nil, err
	}

	return dto.ToTaskDTO(t, uc.markdown), nil
}

// checkTaskAccess resolves the caller's requester profile and verifies they
// may act on t. Certifiers pass unconditionally.
func checkTaskAccess(
	ctx context.Context,
	requesterRepo user.RequesterRepository,
	userID uint,
	role authorization.UserRole,
	t *task.Task,
) error {
	if role.IsCertifier() {
		return nil
	}

	requester, err := requesterRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrRequesterNotFound) {
			return apperrors.NewForbiddenError("no requester profile for this account")
		}
		return err
	}

	if !authorization.CanAccessTaskByOwner(requester.ID(), role, t.RequesterID()) {
		return apperrors.NewForbiddenError("task belongs to another requester")
	}

	return nil
}
