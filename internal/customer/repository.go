package customer

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"mercato-be/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, userID int, firstName, lastName string) (Customer, error)
	FindByUserID(ctx context.Context, userID int) (Customer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, firstName, lastName string) (Customer, error) {
	log := logger.FromCtx(ctx)

	var c Customer
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO customers (user_id, first_name, last_name) VALUES ($1, $2, $3) RETURNING customer_id, user_id, first_name, last_name",
		userID, firstName, lastName,
	).Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName)

	if err != nil {
		log.Error("db: failed to insert customer",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return Customer{}, err
	}

	return c, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx,
		"SELECT customer_id, user_id, first_name, last_name FROM customers WHERE user_id = $1",
		userID,
	).Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, err
	}

	return c, nil
}
