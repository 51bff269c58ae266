package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const DefaultSessionTTL = 24 * time.Hour

type AuthService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	sessions       ports.SessionStore
	clock          ports.Clock
	sessionTTL     time.Duration
}

func NewAuthService(
	userRepository ports.UserRepository,
	hasher ports.PasswordHasher,
	sessions ports.SessionStore,
	clock ports.Clock,
	sessionTTL time.Duration,
) *AuthService {
	if clock == nil {
		clock = SystemClock{}
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		sessions:       sessions,
		clock:          clock,
		sessionTTL:     sessionTTL,
	}
}

// Register creates the user and opens a session for it.
func (s *AuthService) Register(ctx context.Context, credentials domain.Credentials) (domain.Principal, domain.Session, error) {
	if err := credentials.Validate(); err != nil {
		return domain.Principal{}, domain.Session{}, err
	}
	username := strings.TrimSpace(credentials.Username)

	_, err := s.userRepository.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.Principal{}, domain.Session{}, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.Principal{}, domain.Session{}, err
	}

	hash, err := s.hasher.Hash(credentials.Password)
	if err != nil {
		return domain.Principal{}, domain.Session{}, err
	}

	user, err := s.userRepository.CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		return domain.Principal{}, domain.Session{}, err
	}

	principal := user.Principal()
	session, err := s.startSession(ctx, principal)
	if err != nil {
		return domain.Principal{}, domain.Session{}, err
	}
	return principal, session, nil
}

func (s *AuthService) Authenticate(ctx context.Context, credentials domain.Credentials) (domain.Principal, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, strings.TrimSpace(credentials.Username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrInvalidCredentials
		}
		return domain.Principal{}, err
	}

	if !s.hasher.Verify(credentials.Password, user.PasswordHash) {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	return user.Principal(), nil
}

func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (domain.Principal, domain.Session, error) {
	principal, err := s.Authenticate(ctx, credentials)
	if err != nil {
		return domain.Principal{}, domain.Session{}, err
	}

	session, err := s.startSession(ctx, principal)
	if err != nil {
		return domain.Principal{}, domain.Session{}, err
	}
	return principal, session, nil
}

// CurrentPrincipal reports false for unknown, expired or orphaned sessions.
func (s *AuthService) CurrentPrincipal(ctx context.Context, sessionID string) (domain.Principal, bool, error) {
	if sessionID == "" {
		return domain.Principal{}, false, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Principal{}, false, nil
		}
		return domain.Principal{}, false, err
	}
	if session.Expired(s.clock.Now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			zap.L().Warn("failed to delete expired session", zap.Error(err))
		}
		return domain.Principal{}, false, nil
	}

	user, err := s.userRepository.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, false, nil
		}
		return domain.Principal{}, false, err
	}
	return user.Principal(), true, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) startSession(ctx context.Context, principal domain.Principal) (domain.Session, error) {
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    principal.ID,
		ExpiresAt: s.clock.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

var _ ports.AuthService = (*AuthService)(nil)
