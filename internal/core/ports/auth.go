package ports

import (
	"context"

	"todolist/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type SessionStore interface {
	Create(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// PrincipalResolver maps a session id taken from a request to its principal.
type PrincipalResolver interface {
	CurrentPrincipal(ctx context.Context, sessionID string) (domain.Principal, bool, error)
}

type AuthService interface {
	PrincipalResolver
	Register(ctx context.Context, credentials domain.Credentials) (domain.Principal, domain.Session, error)
	Authenticate(ctx context.Context, credentials domain.Credentials) (domain.Principal, error)
	Login(ctx context.Context, credentials domain.Credentials) (domain.Principal, domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}
