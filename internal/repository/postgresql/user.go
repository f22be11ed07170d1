package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password_hash, full_name, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, u.Username, u.PasswordHash, u.FullName, u.Role).
		Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, user.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByUsername implements user.Repository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 AND is_active = true`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// ListActive implements user.Repository.
func (r *userRepository) ListActive(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_active = true ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET username = $1, password_hash = $2, full_name = $3, role = $4,
		    is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Username, u.PasswordHash, u.FullName, u.Role, u.IsActive, u.ID,
	).Scan(&u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, user.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// SoftDelete implements user.Repository.
func (r *userRepository) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
