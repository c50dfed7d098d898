package valueobjects

import "fmt"

type TaskStatus string

const (
	StatusActive    TaskStatus = "active"
	StatusCompleted TaskStatus = "completed"
	StatusRejected  TaskStatus = "rejected"
)

var validTaskStatuses = map[TaskStatus]bool{
	StatusActive:    true,
	StatusCompleted: true,
	StatusRejected:  true,
}

// Completed and rejected tasks can both return to active via reactivation;
// deletion is allowed from any status and is not a status of its own.
var taskStatusTransitions = map[TaskStatus][]TaskStatus{
	StatusActive: {
		StatusCompleted,
		StatusRejected,
	},
	StatusCompleted: {
		StatusActive,
	},
	StatusRejected: {
		StatusActive,
	},
}

func (ts TaskStatus) String() string {
	return string(ts)
}

func (ts TaskStatus) IsValid() bool {
	return validTaskStatuses[ts]
}

func (ts TaskStatus) CanTransitionTo(newStatus TaskStatus) bool {
	allowed, ok := taskStatusTransitions[ts]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (ts TaskStatus) IsActive() bool {
	return ts == StatusActive
}

func (ts TaskStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TaskStatus) IsRejected() bool {
	return ts == StatusRejected
}

func NewTaskStatus(s string) (TaskStatus, error) {
	ts := TaskStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return ts, nil
}
