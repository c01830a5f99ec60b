package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, username, password_hash, role, is_active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	u.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.PasswordHash, u.Role, u.IsActive, u.CreatedOn)
	return err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, password_hash, role, is_active, created_on FROM users WHERE username = $1`
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user", username)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
