package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carstock/carstock-go/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository handles credential store persistence.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, email, COALESCE(full_name, ''), hashed_password, disabled
		FROM users WHERE username = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.HashedPassword, &user.Disabled,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// Create inserts a new user and sets the generated ID on the user struct.
// The password must already be hashed by the caller.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, email, full_name, hashed_password, disabled)
		VALUES (?, ?, NULLIF(?, ''), ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.Username, user.Email, user.FullName, user.HashedPassword, user.Disabled,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}
