package usecases

import (
	"context"
	"errors"
	"time"

	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	"certdesk/internal/shared/biztime"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

type SubmitTaskCommand struct {
	Name          string
	Description   string
	ProjectNumber string
	// UserID is the authenticated account submitting the task.
	UserID uint
}

type SubmitTaskResult struct {
	TaskID        uint      `json:"task_id"`
	Status        string    `json:"status"`
	CertifierID   *uint     `json:"certifier_id"`
	TimeSubmitted time.Time `json:"time_submitted"`
}

// SubmitTaskUseCase creates a new active task, consuming one slot from the
// submitting requester's region. The region is resolved from the requester's
// profile at submission time, and the slot check plus the insert run in one
// transaction so two concurrent submissions cannot share the last slot.
type SubmitTaskUseCase struct {
	taskRepo      task.TaskRepository
	requesterRepo user.RequesterRepository
	certifierRepo user.CertifierRepository
	slots         SlotAdjuster
	txManager     TransactionManager
	logger        logger.Interface
}

func NewSubmitTaskUseCase(
	taskRepo task.TaskRepository,
	requesterRepo user.RequesterRepository,
	certifierRepo user.CertifierRepository,
	slots SlotAdjuster,
	txManager TransactionManager,
	logger logger.Interface,
) *SubmitTaskUseCase {
	return &SubmitTaskUseCase{
		taskRepo:      taskRepo,
		requesterRepo: requesterRepo,
		certifierRepo: certifierRepo,
		slots:         slots,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *SubmitTaskUseCase) Execute(ctx context.Context, cmd SubmitTaskCommand) (*SubmitTaskResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	var newTask *task.Task

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		requester, err := uc.requesterRepo.FindByUserID(txCtx, cmd.UserID)
		if err != nil {
			if errors.Is(err, user.ErrRequesterNotFound) {
				return apperrors.NewForbiddenError("only requesters can submit tasks")
			}
			return err
		}

		if err := uc.slots.TryConsume(txCtx, requester.Region()); err != nil {
			return err
		}

		var certifierID *uint
		certifier, err := uc.certifierRepo.FindDefault(txCtx)
		switch {
		case err == nil:
			id := certifier.ID()
			certifierID = &id
		case errors.Is(err, user.ErrCertifierNotFound):
			// No certifier seeded yet; the task stays unassigned.
		default:
			return err
		}

		newTask, err = task.NewTask(
			cmd.Name,
			cmd.Description,
			cmd.ProjectNumber,
			requester.ID(),
			certifierID,
			biztime.NowUTC(),
		)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		return uc.taskRepo.Save(txCtx, newTask)
	})
	if err != nil {
		uc.logger.Errorw("failed to submit task", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task submitted",
		"task_id", newTask.ID(), "requester_id", newTask.RequesterID())

	return &SubmitTaskResult{
		TaskID:        newTask.ID(),
		Status:        newTask.Status().String(),
		CertifierID:   newTask.CertifierID(),
		TimeSubmitted: newTask.TimeSubmitted(),
	}, nil
}

func (uc *SubmitTaskUseCase) validateCommand(cmd SubmitTaskCommand) error {
	if len(cmd.Name) == 0 {
		return apperrors.NewValidationError("name is required")
	}
	if len(cmd.Name) > 200 {
		return apperrors.NewValidationError("name exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) > 5000 {
		return apperrors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("user ID is required")
	}
	return nil
}
