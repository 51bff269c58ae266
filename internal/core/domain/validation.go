package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength    = 255
	MaxUsernameLength = 255
)

func (in CreateTaskInput) Validate() error {
	verr := &ValidationError{}
	validateTitle(verr, in.Title)
	if in.Category == "" {
		verr.Add(FieldCategory, ReasonRequired)
	} else if !in.Category.Valid() {
		verr.Add(FieldCategory, ReasonInvalidValue)
	}
	return verr.Err()
}

// Validate checks the fields that are present. An empty update is valid.
func (in UpdateTaskInput) Validate() error {
	verr := &ValidationError{}
	if in.Title != nil {
		validateTitle(verr, *in.Title)
	}
	if in.Category != nil && !in.Category.Valid() {
		verr.Add(FieldCategory, ReasonInvalidValue)
	}
	return verr.Err()
}

func validateTitle(verr *ValidationError, title string) {
	if strings.TrimSpace(title) == "" {
		verr.Add(FieldTitle, ReasonRequired)
		return
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		verr.Add(FieldTitle, ReasonTooLong)
	}
}
