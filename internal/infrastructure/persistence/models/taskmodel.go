package models

import (
	"time"

	"certdesk/internal/shared/constants"
)

// TaskModel represents the database persistence model for tasks.
type TaskModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"not null;size:200"`
	Description   string `gorm:"type:text"`
	ProjectNumber string `gorm:"size:50"`
	RequesterID   uint   `gorm:"not null;index:idx_tasks_requester"`
	CertifierID   *uint  `gorm:"index:idx_tasks_certifier"`
	Status        string `gorm:"not null;default:active;size:20;index:idx_tasks_status"`
	TimeSubmitted time.Time
	TimeCompleted *time.Time
	TimeRejected  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TaskModel) TableName() string {
	return constants.TableTasks
}
