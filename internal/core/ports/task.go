package ports

import (
	"context"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	// FindByOwner looks a task up regardless of status; a task owned by
	// someone else is indistinguishable from a missing one.
	FindByOwner(ctx context.Context, taskID, ownerID string) (domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string, statuses []domain.TaskStatus) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, taskID, ownerID string, status domain.TaskStatus) error
}

type TaskService interface {
	List(ctx context.Context, ownerID, statusFilter string) ([]domain.Task, error)
	Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	SetStatus(ctx context.Context, ownerID, taskID string, status domain.TaskStatus) error
	SoftDelete(ctx context.Context, ownerID, taskID string) error
}
