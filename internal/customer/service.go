package customer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mercato-be/internal/auth"
	"mercato-be/internal/logger"
)

type Service interface {
	Register(ctx context.Context, ident auth.Identity, firstName, lastName string) (Customer, error)
	ProfileByIdentity(ctx context.Context, ident auth.Identity) (Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register creates the customer profile keyed by the identity's user id.
func (s *service) Register(ctx context.Context, ident auth.Identity, firstName, lastName string) (Customer, error) {
	log := logger.FromCtx(ctx)

	userID, err := ident.ParseUserID()
	if err != nil {
		return Customer{}, err
	}

	c, err := s.repo.Create(ctx, userID, firstName, lastName)
	if err != nil {
		return Customer{}, err
	}

	log.Info("customer registered",
		zap.String("customer_id", fmt.Sprint(c.ID)),
		zap.Int("user_id", userID),
	)

	return c, nil
}

func (s *service) ProfileByIdentity(ctx context.Context, ident auth.Identity) (Customer, error) {
	userID, err := ident.ParseUserID()
	if err != nil {
		return Customer{}, err
	}
	return s.repo.FindByUserID(ctx, userID)
}
