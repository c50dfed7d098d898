package dto

import (
	"time"

	"certdesk/internal/domain/task"
	"certdesk/internal/shared/services/markdown"
)

type TaskDTO struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	DescriptionHTML string     `json:"description_html"`
	ProjectNumber   string     `json:"project_number"`
	RequesterID     uint       `json:"requester_id"`
	CertifierID     *uint      `json:"certifier_id"`
	Status          string     `json:"status"`
	TimeSubmitted   time.Time  `json:"time_submitted"`
	TimeCompleted   *time.Time `json:"time_completed"`
	TimeRejected    *time.Time `json:"time_rejected"`
}

// ToTaskDTO converts a task entity. Descriptions are authored as Markdown;
// the rendered HTML ships alongside the raw text, sanitized before leaving
// the server.
func ToTaskDTO(t *task.Task, md markdown.Service) *TaskDTO {
	if t == nil {
		return nil
	}

	html := ""
	if md != nil {
		if rendered, err := md.ToHTMLSanitized(t.Description()); err == nil {
			html = rendered
		}
	}

	return &TaskDTO{
		ID:              t.ID(),
		Name:            t.Name(),
		Description:     t.Description(),
		DescriptionHTML: html,
		ProjectNumber:   t.ProjectNumber(),
		RequesterID:     t.RequesterID(),
		CertifierID:     t.CertifierID(),
		Status:          t.Status().String(),
		TimeSubmitted:   t.TimeSubmitted(),
		TimeCompleted:   t.TimeCompleted(),
		TimeRejected:    t.TimeRejected(),
	}
}

// ToTaskDTOs converts a slice of task entities.
func ToTaskDTOs(tasks []*task.Task, md markdown.Service) []*TaskDTO {
	dtos := make([]*TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, ToTaskDTO(t, md))
	}
	return dtos
}
