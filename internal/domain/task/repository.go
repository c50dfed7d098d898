package task

import (
	"context"
	"fmt"
	"time"
)

// ErrTaskNotFound is returned when a task id resolves to no row.
var ErrTaskNotFound = fmt.Errorf("task not found")

// VisibilityFilter selects tasks for a listing: every active task, plus
// completed/rejected tasks whose resolving timestamp falls inside
// [DayStart, DayEnd) of the current business day. A nil RequesterID means
// the certifier view across all requesters.
type VisibilityFilter struct {
	RequesterID *uint
	DayStart    time.Time
	DayEnd      time.Time
}

type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, taskID uint) error
	// FindByID returns ErrTaskNotFound when the row is absent.
	FindByID(ctx context.Context, taskID uint) (*Task, error)
	// ListVisible returns tasks under the visibility filter ordered by
	// submission time, newest first.
	ListVisible(ctx context.Context, filter VisibilityFilter) ([]*Task, error)
	// CountActiveByRegion counts currently-active tasks whose owning
	// requester belongs to region.
	CountActiveByRegion(ctx context.Context, region int) (int64, error)
}
