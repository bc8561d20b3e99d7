package postgres

import (
	"context"
	"errors"
	"fmt"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, pin_hash, role, step_up_enabled, step_up_secret, created_at`

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.PinHash,
		u.Role, u.StepUpEnabled, u.StepUpSecret, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

// UpdateStepUp stores the TOTP secret and enablement flag.
func (r *UserRepo) UpdateStepUp(ctx context.Context, id uuid.UUID, secret string, enabled bool) error {
	query := `UPDATE users SET step_up_secret = $1, step_up_enabled = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, secret, enabled, id)
	if err != nil {
		return fmt.Errorf("update step-up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update step-up: user %s not found", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PinHash,
		&u.Role, &u.StepUpEnabled, &u.StepUpSecret, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}
