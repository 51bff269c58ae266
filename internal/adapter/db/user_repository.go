package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const (
	selectUserColumns = `SELECT id, username, password, created_at FROM users`

	getUserByIDQuery       = selectUserColumns + ` WHERE id = ?`
	getUserByUsernameQuery = selectUserColumns + ` WHERE username = ?`
	insertUserQuery        = `INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        uint64    `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	id, err := insertReturningID(ctx, r.db, insertUserQuery, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	user.ID = id
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getUser(ctx, getUserByIDQuery, id)
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, getUserByUsernameQuery, username)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg interface{}) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.Password,
		CreatedAt:    row.CreatedAt.UTC(),
	}, nil
}
