package usecases

import (
	"context"
)

type mockSlotCounter struct {
	GetSlotCountFunc   func(ctx context.Context, region int) (int, error)
	AdminIncrementFunc func(ctx context.Context, region int) (int, error)
	AdminDecrementFunc func(ctx context.Context, region int) (int, error)
}

func (m *mockSlotCounter) GetSlotCount(ctx context.Context, region int) (int, error) {
	if m.GetSlotCountFunc != nil {
		return m.GetSlotCountFunc(ctx, region)
	}
	return 0, nil
}

func (m *mockSlotCounter) AdminIncrement(ctx context.Context, region int) (int, error) {
	if m.AdminIncrementFunc != nil {
		return m.AdminIncrementFunc(ctx, region)
	}
	return 0, nil
}

func (m *mockSlotCounter) AdminDecrement(ctx context.Context, region int) (int, error) {
	if m.AdminDecrementFunc != nil {
		return m.AdminDecrementFunc(ctx, region)
	}
	return 0, nil
}

// mockTxManager runs the unit of work directly on the caller's context.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}
