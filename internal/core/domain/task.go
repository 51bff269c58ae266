package domain

import "time"

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Category    Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

func (t Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Category    Category
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish an
// explicit null from an absent field for the nullable columns.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Category       *Category
	CompletedAt    *time.Time
	CompletedAtSet bool
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		!in.DescriptionSet &&
		in.Category == nil &&
		!in.CompletedAtSet
}

// Apply merges the supplied fields onto task. Timestamps other than
// completedAt are left to the caller.
func (in UpdateTaskInput) Apply(task Task) Task {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.DescriptionSet {
		task.Description = copyString(in.Description)
	}
	if in.Category != nil {
		task.Category = *in.Category
	}
	if in.CompletedAtSet {
		task.CompletedAt = copyTime(in.CompletedAt)
	}
	return task
}

type ListTasksQuery struct {
	Category *Category
	Sort     SortCriterion
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func copyTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
