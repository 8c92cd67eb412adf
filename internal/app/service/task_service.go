package service

import (
	"context"
	"fmt"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

// List returns the owner's non-deleted tasks, newest first. statusFilter
// narrows the result to exactly "pending" or "completed"; any other value
// means no narrowing.
func (s *TaskService) List(ctx context.Context, ownerID, statusFilter string) ([]domain.Task, error) {
	statuses := []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusCompleted}
	switch domain.TaskStatus(statusFilter) {
	case domain.TaskStatusPending:
		statuses = []domain.TaskStatus{domain.TaskStatusPending}
	case domain.TaskStatusCompleted:
		statuses = []domain.TaskStatus{domain.TaskStatusCompleted}
	}

	return s.taskRepository.ListByOwner(ctx, ownerID, statuses)
}

func (s *TaskService) Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.Create(ctx, ownerID, input)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// SetStatus toggles a task between pending and completed. The owner check
// runs first: a foreign task reports ErrTaskNotFound even if the requested
// status is also invalid. "deleted" is rejected here; soft deletion has its
// own operation.
func (s *TaskService) SetStatus(ctx context.Context, ownerID, taskID string, status domain.TaskStatus) error {
	if _, err := s.taskRepository.FindByOwner(ctx, taskID, ownerID); err != nil {
		return err
	}

	if status != domain.TaskStatusPending && status != domain.TaskStatusCompleted {
		return domain.ErrInvalidStatus
	}

	return s.taskRepository.UpdateStatus(ctx, taskID, ownerID, status)
}

// SoftDelete marks a task deleted. The lookup is not status-restricted, so
// deleting an already-deleted task succeeds silently.
func (s *TaskService) SoftDelete(ctx context.Context, ownerID, taskID string) error {
	if _, err := s.taskRepository.FindByOwner(ctx, taskID, ownerID); err != nil {
		return err
	}

	return s.taskRepository.UpdateStatus(ctx, taskID, ownerID, domain.TaskStatusDeleted)
}

var _ ports.TaskService = (*TaskService)(nil)
