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

type UpdateTaskCommand struct {
	TaskID        uint
	UserID        uint
	Role          authorization.UserRole
	Name          string
	Description   string
	ProjectNumber string
}

// UpdateTaskUseCase edits a task's details. Editing a rejected task is a
// resubmission: the task returns to active, its rejection timestamp is
// cleared and one slot is consumed from the owner's current region, in the
// same transaction as the edit. The consume is unconditional, like an
// explicit reactivation.
type UpdateTaskUseCase struct {
	taskRepo      task.TaskRepository
	requesterRepo user.RequesterRepository
	slots         SlotAdjuster
	txManager     TransactionManager
	markdown      markdown.Service
	logger        logger.Interface
}

func NewUpdateTaskUseCase(
	taskRepo task.TaskRepository,
	requesterRepo user.RequesterRepository,
	slots SlotAdjuster,
	txManager TransactionManager,
	markdown markdown.Service,
	logger logger.Interface,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo:      taskRepo,
		requesterRepo: requesterRepo,
		slots:         slots,
		txManager:     txManager,
		markdown:      markdown,
		logger:        logger,
	}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*dto.TaskDTO, error) {
	var updated *task.Task
	resubmitted := false

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

		if t.Status().IsRejected() {
			if err := t.Reactivate(); err != nil {
				return apperrors.NewConflictError(err.Error())
			}
			resubmitted = true
		}

		if err := t.UpdateDetails(cmd.Name, cmd.Description, cmd.ProjectNumber); err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.taskRepo.Update(txCtx, t); err != nil {
			return err
		}

		if resubmitted {
			requester, err := uc.requesterRepo.FindByID(txCtx, t.RequesterID())
			if err != nil {
				return err
			}
			if err := uc.slots.Consume(txCtx, requester.Region()); err != nil {
				return err
			}
		}

		updated = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task updated", "task_id", cmd.TaskID, "resubmitted", resubmitted)
	return dto.ToTaskDTO(updated, uc.markdown), nil
}
