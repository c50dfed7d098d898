package usecases

import (
	"context"
	"errors"

	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	"certdesk/internal/shared/authorization"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type DeleteTaskCommand struct {
	TaskID uint
	UserID uint
	Role   authorization.UserRole
}

// DeleteTaskUseCase removes a task. Deleting an active task does not return
// its slot: the capacity was spent when the task was submitted and stays
// spent until the daily reset.
type DeleteTaskUseCase struct {
	taskRepo      task.TaskRepository
	requesterRepo user.RequesterRepository
	logger        logger.Interface
}

func NewDeleteTaskUseCase(
	taskRepo task.TaskRepository,
	requesterRepo user.RequesterRepository,
	logger logger.Interface,
) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo:      taskRepo,
		requesterRepo: requesterRepo,
		logger:        logger,
	}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) error {
	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return apperrors.NewNotFoundError("task not found")
		}
		return err
	}

	if err := checkTaskAccess(ctx, uc.requesterRepo, cmd.UserID, cmd.Role, t); err != nil {
		return err
	}

	if err := uc.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		uc.logger.Errorw("failed to delete task", "task_id", cmd.TaskID, "error", err)
		return err
	}

	uc.logger.Infow("task deleted", "task_id", cmd.TaskID)
	return nil
}
