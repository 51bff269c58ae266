package mapper

import (
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

const timestampLayout = time.RFC3339Nano

func ToTodoItems(tasks []domain.Task) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTodoItem(task))
	}
	return items
}

func ToTodoItem(task domain.Task) dto.TodoItem {
	item := dto.TodoItem{
		ID:        task.ID,
		Title:     task.Title,
		Category:  string(task.Category),
		CreatedAt: formatTimestamp(task.CreatedAt),
		UpdatedAt: formatTimestamp(task.UpdatedAt),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.CompletedAt != nil {
		value := formatTimestamp(*task.CompletedAt)
		item.CompletedAt = &value
	}

	return item
}

func ToUserItem(principal domain.Principal) dto.UserItem {
	return dto.UserItem{ID: principal.ID, Username: principal.Username}
}

func formatTimestamp(value time.Time) string {
	return value.UTC().Format(timestampLayout)
}
