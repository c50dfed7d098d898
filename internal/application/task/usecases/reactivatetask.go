package usecases

import (
	"context"
	"errors"

	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	"certdesk/internal/shared/authorization"
	"certdesk/internal/shared/biztime"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type ReactivateTaskCommand struct {
	TaskID uint
	UserID uint
	Role   authorization.UserRole
}

// ReactivateTaskUseCase returns a completed or rejected task to the active
// state and consumes a slot from the owner's region. Unlike a fresh
// submission the consume is unconditional: reactivation is never blocked by
// an exhausted region, it just drives the counter negative until the next
// daily reset.
type ReactivateTaskUseCase struct {
	taskRepo      task.TaskRepository
	requesterRepo user.RequesterRepository
	slots         SlotAdjuster
	txManager     TransactionManager
	logger        logger.Interface
}

func NewReactivateTaskUseCase(
	taskRepo task.TaskRepository,
	requesterRepo user.RequesterRepository,
	slots SlotAdjuster,
	txManager TransactionManager,
	logger logger.Interface,
) *ReactivateTaskUseCase {
	return &ReactivateTaskUseCase{
		taskRepo:      taskRepo,
		requesterRepo: requesterRepo,
		slots:         slots,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *ReactivateTaskUseCase) Execute(ctx context.Context, cmd ReactivateTaskCommand) (*TransitionResult, error) {
	var reactivated *task.Task

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.taskRepo.FindByID(txCtx, cmd.TaskID)
		if err != nil {
			if errors.Is(err, task.ErrTaskNotFound) {
				return apperrors.NewNotFoundError("task not found")
			}
			return err
		}

		if err := checkTaskAccess(txCtx, uc.requesterRepo, cmd.UserID, cmd.Role, t); err != nil {
			return err
		}

		if err := t.Reactivate(); err != nil {
			return apperrors.NewConflictError(err.Error())
		}

		if err := uc.taskRepo.Update(txCtx, t); err != nil {
			return err
		}

		requester, err := uc.requesterRepo.FindByID(txCtx, t.RequesterID())
		if err != nil {
			return err
		}

		if err := uc.slots.Consume(txCtx, requester.Region()); err != nil {
			return err
		}

		reactivated = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to reactivate task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task reactivated", "task_id", cmd.TaskID)

	return &TransitionResult{
		TaskID:       reactivated.ID(),
		Status:       reactivated.Status().String(),
		TransitionAt: biztime.NowUTC(),
	}, nil
}
