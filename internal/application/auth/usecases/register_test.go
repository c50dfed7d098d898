package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdesk/internal/domain/capacity"
	"certdesk/internal/domain/user"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

func testRegions(t *testing.T) *capacity.Regions {
	regions, err := capacity.NewRegions(map[int]int{1: 25, 2: 15})
	require.NoError(t, err)
	return regions
}

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var savedUser *user.User
	var savedRequester *user.Requester

	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedUser = u
			return u.SetID(11)
		},
	}
	requesterRepo := &mockRequesterRepository{
		SaveFunc: func(ctx context.Context, r *user.Requester) error {
			savedRequester = r
			return r.SetID(4)
		},
	}

	uc := NewRegisterUseCase(userRepo, requesterRepo, &mockPasswordHasher{}, testRegions(t), &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "alice",
		Password: "correct horse",
		Region:   2,
		Location: "North Yard",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(11), result.UserID)
	assert.Equal(t, 2, result.Region)
	require.NotNil(t, savedUser)
	assert.Equal(t, "hashed:correct horse", savedUser.PasswordHash())
	require.NotNil(t, savedRequester)
	assert.Equal(t, uint(11), savedRequester.UserID())
}

func TestRegisterUseCase_Execute_NameTaken(t *testing.T) {
	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return user.ErrNameTaken
		},
	}

	uc := NewRegisterUseCase(userRepo, &mockRequesterRepository{}, &mockPasswordHasher{}, testRegions(t), &mockTxManager{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "alice",
		Password: "correct horse",
		Region:   1,
		Location: "North Yard",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegisterUseCase_Execute_ProfileFailureRollsBack(t *testing.T) {
	var txErr error
	userRepo := &mockUserRepository{}
	requesterRepo := &mockRequesterRepository{
		SaveFunc: func(ctx context.Context, r *user.Requester) error {
			return fmt.Errorf("requester insert failed")
		},
	}
	tx := &mockTxManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			txErr = fn(ctx)
			return txErr
		},
	}

	uc := NewRegisterUseCase(userRepo, requesterRepo, &mockPasswordHasher{}, testRegions(t), tx, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "bob",
		Password: "long enough",
		Region:   1,
		Location: "South Yard",
	})
	require.Error(t, err)
	assert.Error(t, txErr, "the profile failure must surface inside the transaction so both writes roll back")
}

func TestRegisterUseCase_Execute_Validation(t *testing.T) {
	uc := NewRegisterUseCase(&mockUserRepository{}, &mockRequesterRepository{}, &mockPasswordHasher{}, testRegions(t), &mockTxManager{}, logger.NewLogger())

	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{"empty name", RegisterCommand{Password: "long enough", Region: 1, Location: "x"}},
		{"short password", RegisterCommand{Name: "a", Password: "short", Region: 1, Location: "x"}},
		{"missing location", RegisterCommand{Name: "a", Password: "long enough", Region: 1}},
		{"unknown region", RegisterCommand{Name: "a", Password: "long enough", Region: 42, Location: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
