package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"todolist/internal/core/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryTaskRepository mirrors the SQL repository contract in memory.
type memoryTaskRepository struct {
	mu     sync.Mutex
	nextID uint64
	tasks  []domain.Task
	err    error
}

func (r *memoryTaskRepository) ListTasks(_ context.Context, category *domain.Category) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	tasks := append([]domain.Task(nil), r.tasks...)
	if category != nil {
		tasks = domain.FilterByCategory(tasks, *category)
	}
	return tasks, nil
}

func (r *memoryTaskRepository) GetTask(_ context.Context, id uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Task{}, r.err
	}

	for _, task := range r.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (r *memoryTaskRepository) CreateTask(_ context.Context, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Task{}, r.err
	}

	r.nextID++
	task.ID = r.nextID
	r.tasks = append(r.tasks, task)
	return task, nil
}

func (r *memoryTaskRepository) UpdateTask(_ context.Context, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Task{}, r.err
	}

	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			r.tasks[i] = task
			return task, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (r *memoryTaskRepository) DeleteTask(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memoryUserRepository struct {
	mu    sync.Mutex
	users []domain.User
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}
	user.ID = uint64(len(r.users) + 1)
	r.users = append(r.users, user)
	return user, nil
}

func (r *memoryUserRepository) GetUserByID(_ context.Context, id uint64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *memoryUserRepository) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	if password == "unhashable" {
		return "", errors.New("hash failed")
	}
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

type mapSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newMapSessionStore() *mapSessionStore {
	return &mapSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *mapSessionStore) Create(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *mapSessionStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *mapSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *mapSessionStore) Ping(context.Context) error {
	return nil
}

func (s *mapSessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
