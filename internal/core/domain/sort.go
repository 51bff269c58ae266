package domain

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortCriterion string

const (
	SortNewestFirst      SortCriterion = "newest-first"
	SortOldestFirst      SortCriterion = "oldest-first"
	SortCompletionStatus SortCriterion = "completion-status"
	SortAlphabetical     SortCriterion = "alphabetical"
)

// Names the web client sends for the same orderings.
var sortAliases = map[string]SortCriterion{
	string(SortNewestFirst):      SortNewestFirst,
	string(SortOldestFirst):      SortOldestFirst,
	string(SortCompletionStatus): SortCompletionStatus,
	string(SortAlphabetical):     SortAlphabetical,
	"dateCreated-desc":           SortNewestFirst,
	"dateCreated-asc":            SortOldestFirst,
	"completed":                  SortCompletionStatus,
	"title":                      SortAlphabetical,
}

// ParseSortCriterion resolves value, including client aliases, to a known
// criterion.
func ParseSortCriterion(value string) (SortCriterion, bool) {
	criterion, ok := sortAliases[value]
	return criterion, ok
}

// SortTasks returns a stably sorted copy of tasks. Unknown criteria keep the
// input order.
func SortTasks(tasks []Task, criterion SortCriterion) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	canonical, ok := ParseSortCriterion(string(criterion))
	if !ok {
		return sorted
	}

	switch canonical {
	case SortNewestFirst:
		slices.SortStableFunc(sorted, newestFirst)
	case SortOldestFirst:
		slices.SortStableFunc(sorted, func(a, b Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortCompletionStatus:
		slices.SortStableFunc(sorted, func(a, b Task) int {
			if a.IsCompleted() != b.IsCompleted() {
				if a.IsCompleted() {
					return 1
				}
				return -1
			}
			return newestFirst(a, b)
		})
	case SortAlphabetical:
		// Collators are not safe for concurrent use.
		collator := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(sorted, func(a, b Task) int {
			return collator.CompareString(a.Title, b.Title)
		})
	}

	return sorted
}

func newestFirst(a, b Task) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}
