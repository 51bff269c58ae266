package domain

// FilterByCategory returns the tasks whose category equals category, in their
// original relative order.
func FilterByCategory(tasks []Task, category Category) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Category == category {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
