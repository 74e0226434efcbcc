// internal/models/task.go
package models

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task represents a to-do item, optionally linked to a contact.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     Date         `json:"dueDate"`
	AssignedTo  string       `json:"assignedTo"`
	ContactID   *int64       `json:"contactId,omitempty"`
}

// TaskInput is the task form payload; nil means "not submitted".
type TaskInput struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *string       `json:"dueDate"`
	AssignedTo  *string       `json:"assignedTo"`
	ContactID   *int64        `json:"contactId"`
}

// TaskFilter defines the available parameters for filtering and sorting tasks.
// Empty or "all" Status/Priority match everything.
type TaskFilter struct {
	Status    TaskStatus
	Priority  TaskPriority
	Search    string
	SortKey   string
	Direction string
}
