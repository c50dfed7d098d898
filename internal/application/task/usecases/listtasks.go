package usecases

import (
	"context"
	"errors"

	"certdesk/internal/application/task/dto"
	"certdesk/internal/domain/capacity"
	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	"certdesk/internal/shared/authorization"
	"certdesk/internal/shared/biztime"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
	"certdesk/internal/shared/services/markdown"
)

type ListTasksQuery struct {
	UserID uint
	Role   authorization.UserRole
}

type ListTasksResult struct {
	Tasks      []*dto.TaskDTO `json:"tasks"`
	Total      int            `json:"total"`
	SlotCounts map[int]int    `json:"slot_counts"`
}

// ListTasksUseCase returns the board view: every active task plus tasks
// resolved during the current business day, alongside the remaining slot
// count of each region. Requesters see their own tasks, certifiers see
// everyone's.
type ListTasksUseCase struct {
	taskRepo      task.TaskRepository
	requesterRepo user.RequesterRepository
	slots         SlotReader
	regions       *capacity.Regions
	markdown      markdown.Service
	logger        logger.Interface
}

func NewListTasksUseCase(
	taskRepo task.TaskRepository,
	requesterRepo user.RequesterRepository,
	slots SlotReader,
	regions *capacity.Regions,
	markdown markdown.Service,
	logger logger.Interface,
) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo:      taskRepo,
		requesterRepo: requesterRepo,
		slots:         slots,
		regions:       regions,
		markdown:      markdown,
		logger:        logger,
	}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	now := biztime.NowUTC()
	filter := task.VisibilityFilter{
		DayStart: biztime.StartOfDayUTC(now),
		DayEnd:   biztime.EndOfDayUTC(now),
	}

	if !query.Role.IsCertifier() {
		requester, err := uc.requesterRepo.FindByUserID(ctx, query.UserID)
		if err != nil {
			if errors.Is(err, user.ErrRequesterNotFound) {
				return nil, apperrors.NewForbiddenError("no requester profile for this account")
			}
			return nil, err
		}
		id := requester.ID()
		filter.RequesterID = &id
	}

	tasks, err := uc.taskRepo.ListVisible(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "user_id", query.UserID, "error", err)
		return nil, err
	}

	counts := make(map[int]int, len(uc.regions.All()))
	for _, region := range uc.regions.All() {
		count, err := uc.slots.GetSlotCount(ctx, region)
		if err != nil {
			uc.logger.Errorw("failed to read slot count", "region", region, "error", err)
			return nil, err
		}
		counts[region] = count
	}

	return &ListTasksResult{
		Tasks:      dto.ToTaskDTOs(tasks, uc.markdown),
		Total:      len(tasks),
		SlotCounts: counts,
	}, nil
}
