package usecases

import "context"

// TransactionManager runs a unit of work inside a database transaction so the
// ledger row lock taken by the slot service holds for the whole operation.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCounter is the slice of the slot service the capacity use cases need.
type SlotCounter interface {
	GetSlotCount(ctx context.Context, region int) (int, error)
	AdminIncrement(ctx context.Context, region int) (int, error)
	AdminDecrement(ctx context.Context, region int) (int, error)
}

type GetSlotCountExecutor interface {
	Execute(ctx context.Context, query GetSlotCountQuery) (*GetSlotCountResult, error)
}

type IncrementSlotsExecutor interface {
	Execute(ctx context.Context, cmd IncrementSlotsCommand) (*AdjustSlotsResult, error)
}

type DecrementSlotsExecutor interface {
	Execute(ctx context.Context, cmd DecrementSlotsCommand) (*AdjustSlotsResult, error)
}
