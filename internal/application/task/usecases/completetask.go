package usecases

import (
	"context"
	"errors"
	"time"

	"certdesk/internal/domain/task"
	"certdesk/internal/shared/biztime"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type CompleteTaskCommand struct {
	TaskID uint
}

type TransitionResult struct {
	TaskID       uint      `json:"task_id"`
	Status       string    `json:"status"`
	TransitionAt time.Time `json:"transition_at"`
}

// CompleteTaskUseCase marks an active task completed. The slot the task
// consumed stays consumed; completion is not a capacity refund.
type CompleteTaskUseCase struct {
	taskRepo  task.TaskRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewCompleteTaskUseCase(
	taskRepo task.TaskRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CompleteTaskUseCase {
	return &CompleteTaskUseCase{
		taskRepo:  taskRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CompleteTaskUseCase) Execute(ctx context.Context, cmd CompleteTaskCommand) (*TransitionResult, error) {
	var completed *task.Task

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.taskRepo.FindByID(txCtx, cmd.TaskID)
		if err != nil {
			if errors.Is(err, task.ErrTaskNotFound) {
				return apperrors.NewNotFoundError("task not found")
			}
			return err
		}

		if err := t.Complete(biztime.NowUTC()); err != nil {
			return apperrors.NewConflictError(err.Error())
		}

		if err := uc.taskRepo.Update(txCtx, t); err != nil {
			return err
		}

		completed = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to complete task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task completed", "task_id", cmd.TaskID)

	return &TransitionResult{
		TaskID:       completed.ID(),
		Status:       completed.Status().String(),
		TransitionAt: *completed.TimeCompleted(),
	}, nil
}
