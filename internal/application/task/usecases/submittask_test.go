package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdesk/internal/domain/task"
	"certdesk/internal/domain/user"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

func testRequester(t *testing.T, id, userID uint, region int) *user.Requester {
	requester, err := user.ReconstructRequester(id, userID, region, "Test Site")
	require.NoError(t, err)
	return requester
}

func testCertifier(t *testing.T, id, userID uint) *user.Certifier {
	certifier, err := user.ReconstructCertifier(id, userID)
	require.NoError(t, err)
	return certifier
}

func TestSubmitTaskUseCase_Execute_Success(t *testing.T) {
	var consumedRegion int
	var savedTask *task.Task

	taskRepo := &mockTaskRepository{
		SaveFunc: func(ctx context.Context, tk *task.Task) error {
			savedTask = tk
			return tk.SetID(100)
		},
	}
	requesterRepo := &mockRequesterRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*user.Requester, error) {
			assert.Equal(t, uint(7), userID)
			return testRequester(t, 3, 7, 2), nil
		},
	}
	certifierRepo := &mockCertifierRepository{
		FindDefaultFunc: func(ctx context.Context) (*user.Certifier, error) {
			return testCertifier(t, 9, 1), nil
		},
	}
	slots := &mockSlotAdjuster{
		TryConsumeFunc: func(ctx context.Context, region int) error {
			consumedRegion = region
			return nil
		},
	}

	uc := NewSubmitTaskUseCase(taskRepo, requesterRepo, certifierRepo, slots, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), SubmitTaskCommand{
		Name:          "Install guard rail",
		Description:   "North stairwell, **urgent**",
		ProjectNumber: "PRJ-204",
		UserID:        7,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(100), result.TaskID)
	assert.Equal(t, "active", result.Status)
	require.NotNil(t, result.CertifierID)
	assert.Equal(t, uint(9), *result.CertifierID)
	assert.Equal(t, 2, consumedRegion, "slot must come from the requester's region")
	assert.Equal(t, uint(3), savedTask.RequesterID())
}

func TestSubmitTaskUseCase_Execute_NoRequesterProfile(t *testing.T) {
	uc := NewSubmitTaskUseCase(
		&mockTaskRepository{},
		&mockRequesterRepository{},
		&mockCertifierRepository{},
		&mockSlotAdjuster{},
		&mockTxManager{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), SubmitTaskCommand{
		Name:   "Orphan task",
		UserID: 42,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestSubmitTaskUseCase_Execute_CapacityExhausted(t *testing.T) {
	var saved bool
	taskRepo := &mockTaskRepository{
		SaveFunc: func(ctx context.Context, tk *task.Task) error {
			saved = true
			return tk.SetID(1)
		},
	}
	requesterRepo := &mockRequesterRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*user.Requester, error) {
			return testRequester(t, 3, 7, 1), nil
		},
	}
	slots := &mockSlotAdjuster{
		TryConsumeFunc: func(ctx context.Context, region int) error {
			return apperrors.NewCapacityExhaustedError("no slots remaining in region 1")
		},
	}

	uc := NewSubmitTaskUseCase(taskRepo, requesterRepo, &mockCertifierRepository{}, slots, &mockTxManager{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SubmitTaskCommand{
		Name:   "One too many",
		UserID: 7,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCapacityExhaustedError(err))
	assert.False(t, saved, "no task row when the region is exhausted")
}

func TestSubmitTaskUseCase_Execute_NoCertifierSeeded(t *testing.T) {
	requesterRepo := &mockRequesterRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*user.Requester, error) {
			return testRequester(t, 3, 7, 1), nil
		},
	}

	uc := NewSubmitTaskUseCase(
		&mockTaskRepository{},
		requesterRepo,
		&mockCertifierRepository{},
		&mockSlotAdjuster{},
		&mockTxManager{},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), SubmitTaskCommand{
		Name:   "Unassigned task",
		UserID: 7,
	})
	require.NoError(t, err)
	assert.Nil(t, result.CertifierID)
}

func TestSubmitTaskUseCase_Execute_Validation(t *testing.T) {
	uc := NewSubmitTaskUseCase(
		&mockTaskRepository{},
		&mockRequesterRepository{},
		&mockCertifierRepository{},
		&mockSlotAdjuster{},
		&mockTxManager{},
		logger.NewLogger(),
	)

	tests := []struct {
		name string
		cmd  SubmitTaskCommand
	}{
		{"empty name", SubmitTaskCommand{UserID: 1}},
		{"name too long", SubmitTaskCommand{Name: strings.Repeat("x", 201), UserID: 1}},
		{"description too long", SubmitTaskCommand{Name: "ok", Description: strings.Repeat("x", 5001), UserID: 1}},
		{"missing user", SubmitTaskCommand{Name: "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
