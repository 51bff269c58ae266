package domain

import "time"

// ToggleCompletion flips the completion state of task and stamps updatedAt.
// An open task is completed at now; a completed task is reopened.
func ToggleCompletion(task Task, now time.Time) Task {
	if task.CompletedAt == nil {
		completedAt := now
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}
	task.UpdatedAt = now
	return task
}
