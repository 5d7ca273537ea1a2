package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (err error) {
	start := time.Now()
	defer func() { r.track("user_create", start, err) }()

	query := `
		INSERT INTO users (
			username, password_hash, full_name, father_name,
			dob, email, city, state, country, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	user.CreatedAt = time.Now()

	_, err = r.db.ExecContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.FullName,
		user.FatherName,
		user.DOB,
		user.Email,
		user.City,
		user.State,
		user.Country,
		user.CreatedAt,
	)
	if err != nil {
		if err = translateError(err); errors.Is(err, repository.ErrDuplicate) {
			return err
		}
		err = fmt.Errorf("failed to create user: %w", err)
		return err
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user *model.User, err error) {
	start := time.Now()
	defer func() { r.track("user_get", start, err) }()

	query := `
		SELECT username, password_hash, full_name, father_name,
		       dob, email, city, state, country, created_at
		FROM users
		WHERE username = $1
	`

	user = &model.User{}
	if err = r.db.GetContext(ctx, user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = repository.ErrNotFound
			return nil, err
		}
		err = fmt.Errorf("failed to get user: %w", err)
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Exists(ctx context.Context, username string) (exists bool, err error) {
	start := time.Now()
	defer func() { r.track("user_exists", start, err) }()

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	if err = r.db.GetContext(ctx, &exists, query, username); err != nil {
		err = fmt.Errorf("failed to check user existence: %w", err)
		return false, err
	}
	return exists, nil
}
