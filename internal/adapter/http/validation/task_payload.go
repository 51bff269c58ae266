package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"todolist/internal/core/domain"
)

// BuildCreateTaskInput turns a decoded JSON object into a create input. The
// returned error is a *domain.ValidationError naming every failing field.
func BuildCreateTaskInput(raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	verr := &domain.ValidationError{}
	var input domain.CreateTaskInput

	if title, ok := stringField(raw, domain.FieldTitle, verr); ok && title != nil {
		input.Title = strings.TrimSpace(*title)
	}

	if description, ok := stringField(raw, domain.FieldDescription, verr); ok && description != nil {
		input.Description = description
	}

	if category, ok := categoryField(raw, verr); ok {
		input.Category = category
	}

	mergeDomainErrors(verr, input.Validate())
	return input, verr.Err()
}

// BuildUpdateTaskInput accepts any subset of title, description, category and
// completedAt. description and completedAt may be null to clear them.
func BuildUpdateTaskInput(raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	verr := &domain.ValidationError{}
	var input domain.UpdateTaskInput

	if hasJSONField(raw, domain.FieldTitle) {
		title, ok := stringField(raw, domain.FieldTitle, verr)
		if ok && title == nil {
			verr.Add(domain.FieldTitle, domain.ReasonInvalidType)
		} else if ok {
			value := strings.TrimSpace(*title)
			input.Title = &value
		}
	}

	if hasJSONField(raw, domain.FieldDescription) {
		if description, ok := stringField(raw, domain.FieldDescription, verr); ok {
			input.Description = description
			input.DescriptionSet = true
		}
	}

	if hasJSONField(raw, domain.FieldCategory) {
		if isJSONNull(raw[domain.FieldCategory]) {
			verr.Add(domain.FieldCategory, domain.ReasonInvalidType)
		} else if category, ok := categoryField(raw, verr); ok {
			input.Category = &category
		}
	}

	if hasJSONField(raw, domain.FieldCompletedAt) {
		if completedAt, ok := timestampField(raw, domain.FieldCompletedAt, verr); ok {
			input.CompletedAt = completedAt
			input.CompletedAtSet = true
		}
	}

	mergeDomainErrors(verr, input.Validate())
	return input, verr.Err()
}

// stringField decodes raw[field]. ok is false when the field is absent or has
// the wrong type; a JSON null yields ok with a nil value.
func stringField(raw map[string]json.RawMessage, field string, verr *domain.ValidationError) (*string, bool) {
	value, exists := raw[field]
	if !exists {
		return nil, false
	}
	if isJSONNull(value) {
		return nil, true
	}

	var decoded string
	if err := json.Unmarshal(value, &decoded); err != nil {
		verr.Add(field, domain.ReasonInvalidType)
		return nil, false
	}
	return &decoded, true
}

func categoryField(raw map[string]json.RawMessage, verr *domain.ValidationError) (domain.Category, bool) {
	value, ok := stringField(raw, domain.FieldCategory, verr)
	if !ok || value == nil {
		return "", false
	}

	category, valid := domain.ParseCategory(*value)
	if !valid {
		verr.Add(domain.FieldCategory, domain.ReasonInvalidValue)
		return "", false
	}
	return category, true
}

func timestampField(raw map[string]json.RawMessage, field string, verr *domain.ValidationError) (*time.Time, bool) {
	value, ok := stringField(raw, field, verr)
	if !ok {
		return nil, false
	}
	if value == nil {
		return nil, true
	}

	parsed, err := time.Parse(time.RFC3339Nano, *value)
	if err != nil {
		verr.Add(field, domain.ReasonInvalidValue)
		return nil, false
	}
	return &parsed, true
}

func mergeDomainErrors(verr *domain.ValidationError, err error) {
	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		verr.Merge(domainErr)
	}
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
