package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"certdesk/internal/application/task/usecases"
	"certdesk/internal/shared/authorization"
	"certdesk/internal/shared/constants"
	"certdesk/internal/shared/logger"
	"certdesk/internal/shared/utils"
)

type TaskHandler struct {
	submitTaskUC     usecases.SubmitTaskExecutor
	getTaskUC        usecases.GetTaskExecutor
	listTasksUC      usecases.ListTasksExecutor
	updateTaskUC     usecases.UpdateTaskExecutor
	deleteTaskUC     usecases.DeleteTaskExecutor
	completeTaskUC   usecases.CompleteTaskExecutor
	rejectTaskUC     usecases.RejectTaskExecutor
	reactivateTaskUC usecases.ReactivateTaskExecutor
	logger           logger.Interface
}

func NewTaskHandler(
	submitTaskUC usecases.SubmitTaskExecutor,
	getTaskUC usecases.GetTaskExecutor,
	listTasksUC usecases.ListTasksExecutor,
	updateTaskUC usecases.UpdateTaskExecutor,
	deleteTaskUC usecases.DeleteTaskExecutor,
	completeTaskUC usecases.CompleteTaskExecutor,
	rejectTaskUC usecases.RejectTaskExecutor,
	reactivateTaskUC usecases.ReactivateTaskExecutor,
	logger logger.Interface,
) *TaskHandler {
	return &TaskHandler{
		submitTaskUC:     submitTaskUC,
		getTaskUC:        getTaskUC,
		listTasksUC:      listTasksUC,
		updateTaskUC:     updateTaskUC,
		deleteTaskUC:     deleteTaskUC,
		completeTaskUC:   completeTaskUC,
		rejectTaskUC:     rejectTaskUC,
		reactivateTaskUC: reactivateTaskUC,
		logger:           logger,
	}
}

// callerIdentity reads the authenticated user from the context set by the
// auth middleware.
func callerIdentity(c *gin.Context) (uint, authorization.UserRole) {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return id, role
}

// SubmitTask handles POST /tasks
func (h *TaskHandler) SubmitTask(c *gin.Context) {
	var req SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit task", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := callerIdentity(c)

	result, err := h.submitTaskUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task submitted successfully")
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := callerIdentity(c)
	query := usecases.GetTaskQuery{
		TaskID: taskID,
		UserID: userID,
		Role:   role,
	}

	result, err := h.getTaskUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, role := callerIdentity(c)
	query := usecases.ListTasksQuery{
		UserID: userID,
		Role:   role,
	}

	result, err := h.listTasksUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTask handles PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role := callerIdentity(c)
	cmd := usecases.UpdateTaskCommand{
		TaskID:        taskID,
		UserID:        userID,
		Role:          role,
		Name:          req.Name,
		Description:   req.Description,
		ProjectNumber: req.ProjectNumber,
	}

	result, err := h.updateTaskUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task updated successfully", result)
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := callerIdentity(c)
	cmd := usecases.DeleteTaskCommand{
		TaskID: taskID,
		UserID: userID,
		Role:   role,
	}

	if err := h.deleteTaskUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task deleted successfully", nil)
}

// CompleteTask handles POST /tasks/:id/complete
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.completeTaskUC.Execute(c.Request.Context(), usecases.CompleteTaskCommand{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task completed successfully", result)
}

// RejectTask handles POST /tasks/:id/reject
func (h *TaskHandler) RejectTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rejectTaskUC.Execute(c.Request.Context(), usecases.RejectTaskCommand{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task rejected successfully", result)
}

// ReactivateTask handles POST /tasks/:id/reactivate
func (h *TaskHandler) ReactivateTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := callerIdentity(c)
	cmd := usecases.ReactivateTaskCommand{
		TaskID: taskID,
		UserID: userID,
		Role:   role,
	}

	result, err := h.reactivateTaskUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task reactivated successfully", result)
}
