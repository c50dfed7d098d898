package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	capsvc "certdesk/internal/application/capacity/services"
	"certdesk/internal/domain/capacity"
	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

// memoryLedgerRepository keeps ledgers in a map so the real slot service can
// run against the use cases without a database.
type memoryLedgerRepository struct {
	ledgers map[int]*capacity.Ledger
}

func newMemoryLedgerRepository() *memoryLedgerRepository {
	return &memoryLedgerRepository{ledgers: make(map[int]*capacity.Ledger)}
}

func (m *memoryLedgerRepository) FindForUpdate(ctx context.Context, region int) (*capacity.Ledger, error) {
	ledger, ok := m.ledgers[region]
	if !ok {
		return nil, capacity.ErrLedgerNotFound
	}
	return ledger, nil
}

func (m *memoryLedgerRepository) Create(ctx context.Context, ledger *capacity.Ledger) error {
	m.ledgers[ledger.Region()] = ledger
	return nil
}

func (m *memoryLedgerRepository) Update(ctx context.Context, ledger *capacity.Ledger) error {
	m.ledgers[ledger.Region()] = ledger
	return nil
}

// TestTaskLifecycle_RegionCapacity drives submissions against a region with
// 15 daily slots through the real slot service: the region fills up, the 16th
// submission is refused, a rejection frees a slot, and the next submission
// goes through again.
func TestTaskLifecycle_RegionCapacity(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	regions, err := capacity.NewRegions(map[int]int{2: 15})
	require.NoError(t, err)

	ledgerRepo := newMemoryLedgerRepository()
	slotService := capsvc.NewSlotService(ledgerRepo, regions, 30*time.Minute, log)

	var nextID uint
	savedTasks := make(map[uint]*task.Task)
	taskRepo := &mockTaskRepository{
		SaveFunc: func(ctx context.Context, tk *task.Task) error {
			nextID++
			if err := tk.SetID(nextID); err != nil {
				return err
			}
			savedTasks[nextID] = tk
			return nil
		},
		FindByIDFunc: func(ctx context.Context, taskID uint) (*task.Task, error) {
			tk, ok := savedTasks[taskID]
			if !ok {
				return nil, task.ErrTaskNotFound
			}
			return tk, nil
		},
	}
	requesterRepo := &mockRequesterRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*user.Requester, error) {
			return testRequester(t, 3, userID, 2), nil
		},
		FindByIDFunc: func(ctx context.Context, requesterID uint) (*user.Requester, error) {
			return testRequester(t, requesterID, 7, 2), nil
		},
	}

	submit := NewSubmitTaskUseCase(taskRepo, requesterRepo, &mockCertifierRepository{}, slotService, &mockTxManager{}, log)
	reject := NewRejectTaskUseCase(taskRepo, requesterRepo, slotService, &mockTxManager{}, log)

	for i := 0; i < 15; i++ {
		_, err := submit.Execute(ctx, SubmitTaskCommand{
			Name:   fmt.Sprintf("Task %d", i+1),
			UserID: 7,
		})
		require.NoError(t, err, "submission %d should fit within capacity", i+1)
	}

	count, err := slotService.GetSlotCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = submit.Execute(ctx, SubmitTaskCommand{Name: "One too many", UserID: 7})
	require.Error(t, err)
	assert.True(t, apperrors.IsCapacityExhaustedError(err))

	_, err = reject.Execute(ctx, RejectTaskCommand{TaskID: 1})
	require.NoError(t, err)

	count, err = slotService.GetSlotCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "rejection returns the slot")

	_, err = submit.Execute(ctx, SubmitTaskCommand{Name: "Fits again", UserID: 7})
	require.NoError(t, err)
}
