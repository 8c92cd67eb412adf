package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusDeleted   TaskStatus = "deleted"
)

// Task belongs to exactly one owner for its whole lifetime. A deleted task
// stays in the store; the status flag is what hides it from listings.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	DueDate     *time.Time
	Status      TaskStatus
	CreatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}
