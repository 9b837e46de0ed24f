package supplier

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mercato-be/internal/auth"
	"mercato-be/internal/logger"
)

type Service interface {
	Register(ctx context.Context, ident auth.Identity, contactPhone string) (Supplier, error)
	ProfileByIdentity(ctx context.Context, ident auth.Identity) (Supplier, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register creates the supplier profile keyed by the identity's user id.
func (s *service) Register(ctx context.Context, ident auth.Identity, contactPhone string) (Supplier, error) {
	log := logger.FromCtx(ctx)

	userID, err := ident.ParseUserID()
	if err != nil {
		return Supplier{}, err
	}

	sup, err := s.repo.Create(ctx, userID, contactPhone)
	if err != nil {
		return Supplier{}, err
	}

	log.Info("supplier registered",
		zap.String("supplier_id", fmt.Sprint(sup.ID)),
		zap.Int("user_id", userID),
	)

	return sup, nil
}

func (s *service) ProfileByIdentity(ctx context.Context, ident auth.Identity) (Supplier, error) {
	userID, err := ident.ParseUserID()
	if err != nil {
		return Supplier{}, err
	}
	return s.repo.FindByUserID(ctx, userID)
}
