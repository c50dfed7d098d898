package usecases

import (
	"context"

	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
)

type mockTaskRepository struct {
	SaveFunc                func(ctx context.Context, t *task.Task) error
	UpdateFunc              func(ctx context.Context, t *task.Task) error
	DeleteFunc              func(ctx context.Context, taskID uint) error
	FindByIDFunc            func(ctx context.Context, taskID uint) (*task.Task, error)
	ListVisibleFunc         func(ctx context.Context, filter task.VisibilityFilter) ([]*task.Task, error)
	CountActiveByRegionFunc func(ctx context.Context, region int) (int64, error)
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, taskID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, taskID)
	}
	return nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, taskID uint) (*task.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, taskID)
	}
	return nil, task.ErrTaskNotFound
}

func (m *mockTaskRepository) ListVisible(ctx context.Context, filter task.VisibilityFilter) ([]*task.Task, error) {
	if m.ListVisibleFunc != nil {
		return m.ListVisibleFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTaskRepository) CountActiveByRegion(ctx context.Context, region int) (int64, error) {
	if m.CountActiveByRegionFunc != nil {
		return m.CountActiveByRegionFunc(ctx, region)
	}
	return 0, nil
}

type mockRequesterRepository struct {
	SaveFunc         func(ctx context.Context, requester *user.Requester) error
	FindByIDFunc     func(ctx context.Context, requesterID uint) (*user.Requester, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*user.Requester, error)
}

func (m *mockRequesterRepository) Save(ctx context.Context, requester *user.Requester) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, requester)
	}
	return nil
}

func (m *mockRequesterRepository) FindByID(ctx context.Context, requesterID uint) (*user.Requester, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, requesterID)
	}
	return nil, user.ErrRequesterNotFound
}

func (m *mockRequesterRepository) FindByUserID(ctx context.Context, userID uint) (*user.Requester, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, user.ErrRequesterNotFound
}

type mockCertifierRepository struct {
	SaveFunc         func(ctx context.Context, certifier *user.Certifier) error
	FindByUserIDFunc func(ctx context.Context, userID uint) (*user.Certifier, error)
	FindDefaultFunc  func(ctx context.Context) (*user.Certifier, error)
}

func (m *mockCertifierRepository) Save(ctx context.Context, certifier *user.Certifier) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, certifier)
	}
	return nil
}

func (m *mockCertifierRepository) FindByUserID(ctx context.Context, userID uint) (*user.Certifier, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, user.ErrCertifierNotFound
}

func (m *mockCertifierRepository) FindDefault(ctx context.Context) (*user.Certifier, error) {
	if m.FindDefaultFunc != nil {
		return m.FindDefaultFunc(ctx)
	}
	return nil, user.ErrCertifierNotFound
}

type mockSlotReader struct {
	GetSlotCountFunc func(ctx context.Context, region int) (int, error)
}

func (m *mockSlotReader) GetSlotCount(ctx context.Context, region int) (int, error) {
	if m.GetSlotCountFunc != nil {
		return m.GetSlotCountFunc(ctx, region)
	}
	return 0, nil
}

type mockSlotAdjuster struct {
	TryConsumeFunc func(ctx context.Context, region int) error
	ConsumeFunc    func(ctx context.Context, region int) error
	ReleaseFunc    func(ctx context.Context, region int) error
}

func (m *mockSlotAdjuster) TryConsume(ctx context.Context, region int) error {
	if m.TryConsumeFunc != nil {
		return m.TryConsumeFunc(ctx, region)
	}
	return nil
}

func (m *mockSlotAdjuster) Consume(ctx context.Context, region int) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, region)
	}
	return nil
}

func (m *mockSlotAdjuster) Release(ctx context.Context, region int) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, region)
	}
	return nil
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
