package supplier

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"mercato-be/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, userID int, contactPhone string) (Supplier, error)
	FindByUserID(ctx context.Context, userID int) (Supplier, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, contactPhone string) (Supplier, error) {
	log := logger.FromCtx(ctx)

	var s Supplier
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO suppliers (user_id, contact_phone) VALUES ($1, $2) RETURNING supplier_id, user_id, contact_phone",
		userID, contactPhone,
	).Scan(&s.ID, &s.UserID, &s.ContactPhone)

	if err != nil {
		log.Error("db: failed to insert supplier",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return Supplier{}, err
	}

	return s, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (Supplier, error) {
	var s Supplier
	err := r.db.QueryRowContext(ctx,
		"SELECT supplier_id, user_id, contact_phone FROM suppliers WHERE user_id = $1",
		userID,
	).Scan(&s.ID, &s.UserID, &s.ContactPhone)
	if errors.Is(err, sql.ErrNoRows) {
		return Supplier{}, ErrNotFound
	}
	if err != nil {
		return Supplier{}, err
	}

	return s, nil
}
