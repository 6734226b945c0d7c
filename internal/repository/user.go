package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"profileimage/internal/config"
	"profileimage/internal/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
)

//go:embed schema.sql
var schema string

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(ctx context.Context, cfg *config.DatabaseConfig) (*UserRepository, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &UserRepository{pool: pool}, nil
}

func (r *UserRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (r *UserRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *UserRepository) Close() {
	r.pool.Close()
}

// UpdateProfileImage replaces the stored reference in a single statement, so a
// failed call leaves the previous value untouched.
func (r *UserRepository) UpdateProfileImage(ctx context.Context, userID uint, reference string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET profile_image = $1, updated_at = now() WHERE id = $2`,
		reference, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) FindUserBySessionToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT u.id, u.email, u.profile_image
		   FROM sessions s
		   JOIN users u ON u.id = s.user_id
		  WHERE s.token = $1 AND s.expires_at > now()`,
		token,
	).Scan(&user.ID, &user.Email, &user.ProfileImage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &user, nil
}
