package userinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vitaehq/vitae/pkg/iam/user"
	"github.com/vitaehq/vitae/pkg/kernel"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts a new user
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			// Unique violation on either username or email
			if pqErr.Constraint == "users_email_key" {
				return user.ErrEmailInUse().WithDetail("email", u.Email)
			}
			return user.ErrUsernameTaken().WithDetail("username", u.Username)
		}
		return user.ErrRegistry.NewWithCause(user.CodeStorageFailure, err).
			WithDetail("operation", "insert")
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, first_name, last_name, created_at
		FROM users
		WHERE id = $1`

	var u user.User
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound().WithDetail("user_id", id)
		}
		return nil, user.ErrRegistry.NewWithCause(user.CodeStorageFailure, err).
			WithDetail("user_id", id).
			WithDetail("operation", "get")
	}

	return &u, nil
}

// GetByUsername retrieves a user by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, first_name, last_name, created_at
		FROM users
		WHERE username = $1`

	var u user.User
	if err := r.db.GetContext(ctx, &u, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound().WithDetail("username", username)
		}
		return nil, user.ErrRegistry.NewWithCause(user.CodeStorageFailure, err).
			WithDetail("username", username).
			WithDetail("operation", "get")
	}

	return &u, nil
}

// ExistsByUsername checks whether a username is already registered
func (r *PostgresUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
	if err != nil {
		return false, user.ErrRegistry.NewWithCause(user.CodeStorageFailure, err).
			WithDetail("username", username)
	}
	return exists, nil
}

// ExistsByEmail checks whether an email is already registered
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, user.ErrRegistry.NewWithCause(user.CodeStorageFailure, err).
			WithDetail("email", email)
	}
	return exists, nil
}
