package validation

import (
	"encoding/json"
	"errors"

	"todolist/internal/core/domain"
)

func BuildCredentials(raw map[string]json.RawMessage) (domain.Credentials, error) {
	verr := &domain.ValidationError{}
	var credentials domain.Credentials

	if username, ok := stringField(raw, domain.FieldUsername, verr); ok && username != nil {
		credentials.Username = *username
	}
	if password, ok := stringField(raw, domain.FieldPassword, verr); ok && password != nil {
		credentials.Password = *password
	}

	var domainErr *domain.ValidationError
	if errors.As(credentials.Validate(), &domainErr) {
		verr.Merge(domainErr)
	}
	return credentials, verr.Err()
}
