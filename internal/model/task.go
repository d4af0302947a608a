package model

import "time"

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns a sortable weight for the priority (high sorts last ascending).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskActive    TaskStatus = "active"
	TaskCompleted TaskStatus = "completed"
	TaskArchived  TaskStatus = "archived"
)

// Task is an entry in the to-do list.
type Task struct {
	Base
	Title       string     `json:"title"`
	Note        string     `json:"note,omitempty"`
	Category    string     `json:"category,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Archived    bool       `json:"archived"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// NewTask creates a task with the given title and category.
func NewTask(title, category string, priority Priority) *Task {
	return &Task{
		Title:    title,
		Category: category,
		Priority: priority,
	}
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	c.DueDate = cloneTime(t.DueDate)
	c.CompletedAt = cloneTime(t.CompletedAt)
	c.ArchivedAt = cloneTime(t.ArchivedAt)
	return &c
}

// Status derives the lifecycle state. Archived wins over completed.
func (t *Task) Status() TaskStatus {
	switch {
	case t.Archived:
		return TaskArchived
	case t.Completed:
		return TaskCompleted
	default:
		return TaskActive
	}
}

// IsOverdue reports whether an open task is past its due date.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// SetCompleted flips completion and keeps CompletedAt in step.
func (t *Task) SetCompleted(done bool, now time.Time) {
	t.Completed = done
	if done {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

// SetArchived moves the task into or out of the archive.
func (t *Task) SetArchived(archived bool, now time.Time) {
	t.Archived = archived
	if archived {
		t.ArchivedAt = &now
	} else {
		t.ArchivedAt = nil
	}
}
