package usecases

import (
	"context"
	"errors"

	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	"certdesk/internal/shared/biztime"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type RejectTaskCommand struct {
	TaskID uint
}

// RejectTaskUseCase marks an active task rejected and returns its slot to the
// owning requester's region. The region is read from the requester's current
// profile, not from wherever the task was submitted.
type RejectTaskUseCase struct {
	taskRepo      task.TaskRepository
	requesterRepo user.RequesterRepository
	slots         SlotAdjuster
	txManager     TransactionManager
	logger        logger.Interface
}

func NewRejectTaskUseCase(
	taskRepo task.TaskRepository,
	requesterRepo user.RequesterRepository,
	slots SlotAdjuster,
	txManager TransactionManager,
	logger logger.Interface,
) *RejectTaskUseCase {
	return &RejectTaskUseCase{
		taskRepo:      taskRepo,
		requesterRepo: requesterRepo,
		slots:         slots,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *RejectTaskUseCase) Execute(ctx context.Context, cmd RejectTaskCommand) (*TransitionResult, error) {
	var rejected *task.Task

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.taskRepo.FindByID(txCtx, cmd.TaskID)
		if err != nil {
			if errors.Is(err, task.ErrTaskNotFound) {
				return apperrors.NewNotFoundError("task not found")
			}
			return err
		}

		if err := t.Reject(biztime.NowUTC()); err != nil {
			return apperrors.NewConflictError(err.Error())
		}

		if err := uc.taskRepo.Update(txCtx, t); err != nil {
			return err
		}

		requester, err := uc.requesterRepo.FindByID(txCtx, t.RequesterID())
		if err != nil {
			return err
		}

		if err := uc.slots.Release(txCtx, requester.Region()); err != nil {
			return err
		}

		rejected = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to reject task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task rejected", "task_id", cmd.TaskID)

	return &TransitionResult{
		TaskID:       rejected.ID(),
		Status:       rejected.Status().String(),
		TransitionAt: *rejected.TimeRejected(),
	}, nil
}
