package service

import (
	"context"
	"time"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	clock          ports.Clock
}

func NewTaskService(taskRepository ports.TaskRepository, clock ports.Clock) *TaskService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TaskService{taskRepository: taskRepository, clock: clock}
}

func (s *TaskService) ListTasks(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, query.Category)
	if err != nil {
		return nil, err
	}

	tasks = domain.SortTasks(tasks, domain.SortNewestFirst)
	if query.Sort != "" {
		tasks = domain.SortTasks(tasks, query.Sort)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	now := nextStamp(s.clock.Now(), time.Time{})
	return s.taskRepository.CreateTask(ctx, domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// UpdateTask merges input onto the stored task. completedAt only changes when
// the input carries it explicitly; ToggleTaskCompletion is the other path.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if input.IsEmpty() {
		return task, nil
	}

	if input.CompletedAtSet && input.CompletedAt != nil {
		completedAt := input.CompletedAt.UTC().Truncate(time.Microsecond)
		if completedAt.Before(task.CreatedAt) {
			verr := &domain.ValidationError{}
			verr.Add(domain.FieldCompletedAt, domain.ReasonBeforeCreatedAt)
			return domain.Task{}, verr
		}
		input.CompletedAt = &completedAt
	}

	updated := input.Apply(task)
	updated.UpdatedAt = nextStamp(s.clock.Now(), task.UpdatedAt)
	return s.taskRepository.UpdateTask(ctx, updated)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) (bool, error) {
	return s.taskRepository.DeleteTask(ctx, id)
}

func (s *TaskService) ToggleTaskCompletion(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	toggled := domain.ToggleCompletion(task, nextStamp(s.clock.Now(), task.UpdatedAt))
	return s.taskRepository.UpdateTask(ctx, toggled)
}

var _ ports.TaskService = (*TaskService)(nil)
