package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the identity attached to an authenticated request.
type Principal struct {
	ID       uint64
	Username string
}

func (u User) Principal() Principal {
	return Principal{ID: u.ID, Username: u.Username}
}

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Validate() error {
	verr := &ValidationError{}
	username := strings.TrimSpace(c.Username)
	if username == "" {
		verr.Add(FieldUsername, ReasonRequired)
	} else if utf8.RuneCountInString(username) > MaxUsernameLength {
		verr.Add(FieldUsername, ReasonTooLong)
	}
	if c.Password == "" {
		verr.Add(FieldPassword, ReasonRequired)
	}
	return verr.Err()
}

type Session struct {
	ID        string
	UserID    uint64
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
