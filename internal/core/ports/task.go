package ports

import (
	"context"
	"time"

	"todolist/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context, category *domain.Category) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) (bool, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) (bool, error)
	ToggleTaskCompletion(ctx context.Context, id uint64) (domain.Task, error)
}

type Clock interface {
	Now() time.Time
}
