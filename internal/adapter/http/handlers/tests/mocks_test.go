package tests

import (
	"context"

	"todolist/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *taskServiceMock) ToggleTaskCompletion(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, credentials domain.Credentials) (domain.Principal, domain.Session, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(domain.Principal), args.Get(1).(domain.Session), args.Error(2)
}

func (m *authServiceMock) Authenticate(ctx context.Context, credentials domain.Credentials) (domain.Principal, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(domain.Principal), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, credentials domain.Credentials) (domain.Principal, domain.Session, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(domain.Principal), args.Get(1).(domain.Session), args.Error(2)
}

func (m *authServiceMock) CurrentPrincipal(ctx context.Context, sessionID string) (domain.Principal, bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.Principal), args.Bool(1), args.Error(2)
}

func (m *authServiceMock) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
