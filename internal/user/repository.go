package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"mercato-be/internal/auth"
	"mercato-be/internal/logger"
)

const uniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, email, password, role string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, password, role string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	var roleStr string
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (email, password, role) VALUES ($1, $2, $3) RETURNING user_id, email, password, role",
		email, password, role,
	).Scan(&u.ID, &u.Email, &u.Password, &roleStr)
	u.Role = auth.Role(roleStr)

	if err != nil {
		// The UNIQUE constraint catches registrations that race past the
		// application-level pre-check.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return User{}, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	var roleStr string
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, email, password, role FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.Password, &roleStr)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}

	u.Role = auth.Role(roleStr)
	return u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	var u User
	var roleStr string
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, email, password, role FROM users WHERE user_id = $1",
		id,
	).Scan(&u.ID, &u.Email, &u.Password, &roleStr)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}

	u.Role = auth.Role(roleStr)
	return u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)",
		email,
	).Scan(&exists)
	return exists, err
}
