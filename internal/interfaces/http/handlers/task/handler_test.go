package task

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskdto "certdesk/internal/application/task/dto"
	"certdesk/internal/application/task/usecases"
	"certdesk/internal/interfaces/http/handlers/testutil"
	"certdesk/internal/shared/authorization"
	"certdesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockSubmitTaskUC struct {
	result *usecases.SubmitTaskResult
	err    error
	gotCmd *usecases.SubmitTaskCommand
}

func (m *mockSubmitTaskUC) Execute(_ context.Context, cmd usecases.SubmitTaskCommand) (*usecases.SubmitTaskResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockGetTaskUC struct {
	result *taskdto.TaskDTO
	err    error
}

func (m *mockGetTaskUC) Execute(_ context.Context, _ usecases.GetTaskQuery) (*taskdto.TaskDTO, error) {
	return m.result, m.err
}

type mockListTasksUC struct {
	result   *usecases.ListTasksResult
	err      error
	gotQuery *usecases.ListTasksQuery
}

func (m *mockListTasksUC) Execute(_ context.Context, query usecases.ListTasksQuery) (*usecases.ListTasksResult, error) {
	m.gotQuery = &query
	return m.result, m.err
}

type mockUpdateTaskUC struct {
	result *taskdto.TaskDTO
	err    error
}

func (m *mockUpdateTaskUC) Execute(_ context.Context, _ usecases.UpdateTaskCommand) (*taskdto.TaskDTO, error) {
	return m.result, m.err
}

type mockDeleteTaskUC struct {
	err error
}

func (m *mockDeleteTaskUC) Execute(_ context.Context, _ usecases.DeleteTaskCommand) error {
	return m.err
}

type mockCompleteTaskUC struct {
	result *usecases.TransitionResult
	err    error
}

func (m *mockCompleteTaskUC) Execute(_ context.Context, _ usecases.CompleteTaskCommand) (*usecases.TransitionResult, error) {
	return m.result, m.err
}

type mockRejectTaskUC struct {
	result *usecases.TransitionResult
	err    error
}

func (m *mockRejectTaskUC) Execute(_ context.Context, _ usecases.RejectTaskCommand) (*usecases.TransitionResult, error) {
	return m.result, m.err
}

type mockReactivateTaskUC struct {
	result *usecases.TransitionResult
	err    error
}

func (m *mockReactivateTaskUC) Execute(_ context.Context, _ usecases.ReactivateTaskCommand) (*usecases.TransitionResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	submitTaskUC     usecases.SubmitTaskExecutor
	getTaskUC        usecases.GetTaskExecutor
	listTasksUC      usecases.ListTasksExecutor
	updateTaskUC     usecases.UpdateTaskExecutor
	deleteTaskUC     usecases.DeleteTaskExecutor
	completeTaskUC   usecases.CompleteTaskExecutor
	rejectTaskUC     usecases.RejectTaskExecutor
	reactivateTaskUC usecases.ReactivateTaskExecutor
}

func newTestTaskHandler(deps testDeps) *TaskHandler {
	return NewTaskHandler(
		deps.submitTaskUC,
		deps.getTaskUC,
		deps.listTasksUC,
		deps.updateTaskUC,
		deps.deleteTaskUC,
		deps.completeTaskUC,
		deps.rejectTaskUC,
		deps.reactivateTaskUC,
		testutil.NewMockLogger(),
	)
}

// =====================================================================
// SubmitTask
// =====================================================================

func TestTaskHandler_SubmitTask_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockSubmitTaskUC{
		result: &usecases.SubmitTaskResult{
			TaskID:        1,
			Status:        "active",
			TimeSubmitted: now,
		},
	}
	handler := newTestTaskHandler(testDeps{submitTaskUC: mockUC})

	reqBody := SubmitTaskRequest{
		Name:          "Calibrate analyzer",
		Description:   "Lane 3 drifts after warm-up",
		ProjectNumber: "PX-104",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)

	handler.SubmitTask(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, uint(7), mockUC.gotCmd.UserID)
	assert.Equal(t, "Calibrate analyzer", mockUC.gotCmd.Name)
}

func TestTaskHandler_SubmitTask_BindError(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	// Missing required name
	reqBody := map[string]string{"description": "no name"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)

	handler.SubmitTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_SubmitTask_RegionExhausted(t *testing.T) {
	mockUC := &mockSubmitTaskUC{
		err: errors.NewCapacityExhaustedError("no slots left in region 2"),
	}
	handler := newTestTaskHandler(testDeps{submitTaskUC: mockUC})

	reqBody := SubmitTaskRequest{Name: "Calibrate analyzer"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)

	handler.SubmitTask(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "capacity_exhausted", resp.Error.Type)
}

// =====================================================================
// GetTask
// =====================================================================

func TestTaskHandler_GetTask_Success(t *testing.T) {
	mockUC := &mockGetTaskUC{
		result: &taskdto.TaskDTO{ID: 3, Name: "Calibrate analyzer", Status: "active"},
	}
	handler := newTestTaskHandler(testDeps{getTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/3", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "3")

	handler.GetTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/abc", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	mockUC := &mockGetTaskUC{err: errors.NewNotFoundError("task not found")}
	handler := newTestTaskHandler(testDeps{getTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/99", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "99")

	handler.GetTask(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_GetTask_Forbidden(t *testing.T) {
	mockUC := &mockGetTaskUC{err: errors.NewForbiddenError("task belongs to another requester")}
	handler := newTestTaskHandler(testDeps{getTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/3", nil)
	testutil.SetAuthContext(c, 8, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "3")

	handler.GetTask(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// =====================================================================
// ListTasks
// =====================================================================

func TestTaskHandler_ListTasks_PassesIdentity(t *testing.T) {
	mockUC := &mockListTasksUC{
		result: &usecases.ListTasksResult{
			Tasks: []*taskdto.TaskDTO{{ID: 1, Name: "Calibrate analyzer", Status: "active"}},
			Total: 1,
		},
	}
	handler := newTestTaskHandler(testDeps{listTasksUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks", nil)
	testutil.SetAuthContext(c, 9, authorization.RoleCertifier)

	handler.ListTasks(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery)
	assert.Equal(t, uint(9), mockUC.gotQuery.UserID)
	assert.Equal(t, authorization.RoleCertifier, mockUC.gotQuery.Role)
}

// =====================================================================
// UpdateTask / DeleteTask
// =====================================================================

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	mockUC := &mockUpdateTaskUC{
		result: &taskdto.TaskDTO{ID: 3, Name: "Recalibrate analyzer", Status: "active"},
	}
	handler := newTestTaskHandler(testDeps{updateTaskUC: mockUC})

	reqBody := UpdateTaskRequest{Name: "Recalibrate analyzer"}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/3", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "3")

	handler.UpdateTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	handler := newTestTaskHandler(testDeps{deleteTaskUC: &mockDeleteTaskUC{}})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tasks/3", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "3")

	handler.DeleteTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandler_DeleteTask_Forbidden(t *testing.T) {
	mockUC := &mockDeleteTaskUC{err: errors.NewForbiddenError("task belongs to another requester")}
	handler := newTestTaskHandler(testDeps{deleteTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tasks/3", nil)
	testutil.SetAuthContext(c, 8, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "3")

	handler.DeleteTask(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// =====================================================================
// Lifecycle transitions
// =====================================================================

func TestTaskHandler_CompleteTask_Success(t *testing.T) {
	mockUC := &mockCompleteTaskUC{
		result: &usecases.TransitionResult{TaskID: 3, Status: "completed", TransitionAt: time.Now().UTC()},
	}
	handler := newTestTaskHandler(testDeps{completeTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/3/complete", nil)
	testutil.SetAuthContext(c, 9, authorization.RoleCertifier)
	testutil.SetURLParam(c, "id", "3")

	handler.CompleteTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandler_CompleteTask_AlreadyResolved(t *testing.T) {
	mockUC := &mockCompleteTaskUC{err: errors.NewConflictError("task is not active")}
	handler := newTestTaskHandler(testDeps{completeTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/3/complete", nil)
	testutil.SetAuthContext(c, 9, authorization.RoleCertifier)
	testutil.SetURLParam(c, "id", "3")

	handler.CompleteTask(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTaskHandler_RejectTask_Success(t *testing.T) {
	mockUC := &mockRejectTaskUC{
		result: &usecases.TransitionResult{TaskID: 3, Status: "rejected", TransitionAt: time.Now().UTC()},
	}
	handler := newTestTaskHandler(testDeps{rejectTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/3/reject", nil)
	testutil.SetAuthContext(c, 9, authorization.RoleCertifier)
	testutil.SetURLParam(c, "id", "3")

	handler.RejectTask(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "rejected")
}

func TestTaskHandler_ReactivateTask_Success(t *testing.T) {
	mockUC := &mockReactivateTaskUC{
		result: &usecases.TransitionResult{TaskID: 3, Status: "active", TransitionAt: time.Now().UTC()},
	}
	handler := newTestTaskHandler(testDeps{reactivateTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/3/reactivate", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleRequester)
	testutil.SetURLParam(c, "id", "3")

	handler.ReactivateTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
