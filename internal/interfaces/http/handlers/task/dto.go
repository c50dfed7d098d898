package task

import (
	"certdesk/internal/application/task/usecases"
)

type SubmitTaskRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	Description   string `json:"description" binding:"max=5000"`
	ProjectNumber string `json:"project_number" binding:"max=50"`
}

func (r *SubmitTaskRequest) ToCommand(userID uint) usecases.SubmitTaskCommand {
	return usecases.SubmitTaskCommand{
		Name:          r.Name,
		Description:   r.Description,
		ProjectNumber: r.ProjectNumber,
		UserID:        userID,
	}
}

type UpdateTaskRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	Description   string `json:"description" binding:"max=5000"`
	ProjectNumber string `json:"project_number" binding:"max=50"`
}
