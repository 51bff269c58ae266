package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const (
	selectTodoColumns = `SELECT id, title, description, category, created_at, updated_at, completed_at FROM todos`

	listTodosQuery           = selectTodoColumns + ` ORDER BY created_at DESC, id DESC`
	listTodosByCategoryQuery = selectTodoColumns + ` WHERE category = ? ORDER BY created_at DESC, id DESC`
	getTodoQuery             = selectTodoColumns + ` WHERE id = ?`
	insertTodoQuery          = `INSERT INTO todos (title, description, category, created_at, updated_at, completed_at) VALUES (?, ?, ?, ?, ?, ?)`
	updateTodoQuery          = `UPDATE todos SET title = ?, description = ?, category = ?, updated_at = ?, completed_at = ? WHERE id = ?`
	deleteTodoQuery          = `DELETE FROM todos WHERE id = ?`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Category    string         `db:"category"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	CompletedAt sql.NullTime   `db:"completed_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context, category *domain.Category) ([]domain.Task, error) {
	var rows []taskRow
	var err error
	if category != nil {
		err = r.db.SelectContext(ctx, &rows, r.db.Rebind(listTodosByCategoryQuery), string(*category))
	} else {
		err = r.db.SelectContext(ctx, &rows, listTodosQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getTodoQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get todo %d: %w", id, err)
	}
	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	id, err := insertReturningID(ctx, r.db, insertTodoQuery,
		task.Title,
		nullString(task.Description),
		string(task.Category),
		task.CreatedAt,
		task.UpdatedAt,
		nullTime(task.CompletedAt),
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert todo: %w", err)
	}

	task.ID = id
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(updateTodoQuery),
		task.Title,
		nullString(task.Description),
		string(task.Category),
		task.UpdatedAt,
		nullTime(task.CompletedAt),
		task.ID,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update todo %d: %w", task.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Task{}, fmt.Errorf("update todo %d: %w", task.ID, err)
	}
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) (bool, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(deleteTodoQuery), id)
	if err != nil {
		return false, fmt.Errorf("delete todo %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete todo %d: %w", id, err)
	}
	return affected > 0, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	category, ok := domain.ParseCategory(row.Category)
	if !ok {
		return domain.Task{}, fmt.Errorf("todo %d has unknown category %q", row.ID, row.Category)
	}

	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Category:  category,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time.UTC()
		task.CompletedAt = &value
	}

	return task, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: value.UTC(), Valid: true}
}
