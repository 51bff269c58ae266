package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldCompletedAt = "completedAt"
	FieldUsername    = "username"
	FieldPassword    = "password"
)

const (
	ReasonRequired        = "required"
	ReasonInvalidType     = "invalid_type"
	ReasonInvalidValue    = "invalid_value"
	ReasonTooLong         = "too_long"
	ReasonBeforeCreatedAt = "before_created_at"
)

type FieldError struct {
	Field  string
	Reason string
}

// ValidationError collects every failing field of a payload.
type ValidationError struct {
	Fields []FieldError
}

// Add records a failure for field. Only the first reason per field is kept.
func (e *ValidationError) Add(field, reason string) {
	if e.Has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for _, f := range other.Fields {
		e.Add(f.Field, f.Reason)
	}
}

// Err returns e as an error, or nil when nothing failed.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
