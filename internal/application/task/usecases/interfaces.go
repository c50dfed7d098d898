package usecases

import (
	"context"

	"certdesk/internal/application/task/dto"
)

// TransactionManager runs a unit of work inside a database transaction.
// Lifecycle transitions mutate a task row and a slot ledger row together;
// both writes must commit or roll back as one.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotReader reads a region's current count, applying pending decay.
type SlotReader interface {
	GetSlotCount(ctx context.Context, region int) (int, error)
}

// SlotAdjuster is the slice of the slot service the task use cases need.
type SlotAdjuster interface {
	// TryConsume takes a slot, failing when the region is exhausted.
	TryConsume(ctx context.Context, region int) error
	// Consume takes a slot unconditionally, even past zero.
	Consume(ctx context.Context, region int) error
	// Release returns a slot.
	Release(ctx context.Context, region int) error
}

type SubmitTaskExecutor interface {
	Execute(ctx context.Context, cmd SubmitTaskCommand) (*SubmitTaskResult, error)
}

type GetTaskExecutor interface {
	Execute(ctx context.Context, query GetTaskQuery) (*dto.TaskDTO, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error)
}

type UpdateTaskExecutor interface {
	Execute(ctx context.Context, cmd UpdateTaskCommand) (*dto.TaskDTO, error)
}

type DeleteTaskExecutor interface {
	Execute(ctx context.Context, cmd DeleteTaskCommand) error
}

type CompleteTaskExecutor interface {
	Execute(ctx context.Context, cmd CompleteTaskCommand) (*TransitionResult, error)
}

type RejectTaskExecutor interface {
	Execute(ctx context.Context, cmd RejectTaskCommand) (*TransitionResult, error)
}

type ReactivateTaskExecutor interface {
	Execute(ctx context.Context, cmd ReactivateTaskCommand) (*TransitionResult, error)
}
