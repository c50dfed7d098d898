package task

import (
	"fmt"
	"time"

	vo "certdesk/internal/domain/task/valueobjects"
)

// Task is a requester's work item. Its region is never cached here; slot
// accounting resolves the region from the owning requester row at transition
// time.
type Task struct {
	id            uint
	name          string
	description   string
	projectNumber string
	requesterID   uint
	certifierID   *uint
	status        vo.TaskStatus
	timeSubmitted time.Time
	timeCompleted *time.Time
	timeRejected  *time.Time
}

func NewTask(
	name string,
	description string,
	projectNumber string,
	requesterID uint,
	certifierID *uint,
	now time.Time,
) (*Task, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("task name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("task name exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	return &Task{
		name:          name,
		description:   description,
		projectNumber: projectNumber,
		requesterID:   requesterID,
		certifierID:   certifierID,
		status:        vo.StatusActive,
		timeSubmitted: now.UTC(),
	}, nil
}

func ReconstructTask(
	id uint,
	name string,
	description string,
	projectNumber string,
	requesterID uint,
	certifierID *uint,
	status vo.TaskStatus,
	timeSubmitted time.Time,
	timeCompleted *time.Time,
	timeRejected *time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("task name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	return &Task{
		id:            id,
		name:          name,
		description:   description,
		projectNumber: projectNumber,
		requesterID:   requesterID,
		certifierID:   certifierID,
		status:        status,
		timeSubmitted: timeSubmitted,
		timeCompleted: timeCompleted,
		timeRejected:  timeRejected,
	}, nil
}

func (t *Task) ID() uint {
	return t.id
}

func (t *Task) Name() string {
	return t.name
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) ProjectNumber() string {
	return t.projectNumber
}

func (t *Task) RequesterID() uint {
	return t.requesterID
}

func (t *Task) CertifierID() *uint {
	return t.certifierID
}

func (t *Task) Status() vo.TaskStatus {
	return t.status
}

func (t *Task) TimeSubmitted() time.Time {
	return t.timeSubmitted
}

func (t *Task) TimeCompleted() *time.Time {
	return t.timeCompleted
}

func (t *Task) TimeRejected() *time.Time {
	return t.timeRejected
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails edits the requester-editable fields.
func (t *Task) UpdateDetails(name, description, projectNumber string) error {
	if len(name) == 0 {
		return fmt.Errorf("task name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("task name exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	t.name = name
	t.description = description
	t.projectNumber = projectNumber
	return nil
}

// Complete marks the task done. Completion keeps the consumed slot; the day's
// quota is not released.
func (t *Task) Complete(now time.Time) error {
	if !t.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("cannot complete task with status %s", t.status)
	}

	t.status = vo.StatusCompleted
	completed := now.UTC()
	t.timeCompleted = &completed
	return nil
}

// Reject marks the task rejected; the caller releases one slot back to the
// task's region.
func (t *Task) Reject(now time.Time) error {
	if !t.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject task with status %s", t.status)
	}

	t.status = vo.StatusRejected
	rejected := now.UTC()
	t.timeRejected = &rejected
	return nil
}

// Reactivate returns a completed or rejected task to active and clears the
// timestamp of the state it left. The caller re-consumes one slot.
func (t *Task) Reactivate() error {
	if t.status.IsActive() {
		return fmt.Errorf("task is already active")
	}
	if !t.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot reactivate task with status %s", t.status)
	}

	if t.status.IsRejected() {
		t.timeRejected = nil
	} else if t.status.IsCompleted() {
		t.timeCompleted = nil
	}
	t.status = vo.StatusActive
	return nil
}

func (t *Task) Validate() error {
	if len(t.name) == 0 {
		return fmt.Errorf("task name is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.requesterID == 0 {
		return fmt.Errorf("requester ID is required")
	}
	return nil
}
