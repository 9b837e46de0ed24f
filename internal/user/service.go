package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mercato-be/internal/auth"
	"mercato-be/internal/logger"
)

type Service interface {
	Register(ctx context.Context, email, password, role string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id int) (User, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenService
}

func NewService(repo Repository, tokens *auth.TokenService) Service {
	return &service{repo: repo, tokens: tokens}
}

// Register creates a credential and returns a signed token for the new
// user. Validation order: duplicate email, role string, password policy.
// Nothing is written until all three pass.
func (s *service) Register(ctx context.Context, email, password, role string) (string, error) {
	log := logger.FromCtx(ctx)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		log.Error("failed to check email", zap.String("email", email), zap.Error(err))
		return "", err
	}
	if exists {
		return "", ErrEmailExists
	}

	parsedRole, ok := auth.ParseRole(role)
	if !ok {
		return "", ErrInvalidRole
	}

	if err := auth.CheckPasswordStrength(password); err != nil {
		return "", err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", err
	}

	u, err := s.repo.Create(ctx, email, hashed, string(parsedRole))
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return "", err
	}

	token, err := s.tokens.CreateToken(u.ID, u.Role)
	if err != nil {
		log.Error("failed to create token", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)

	return token, nil
}

// Login distinguishes three failures: unknown email (ErrNotFound), a
// stored hash that cannot be read (auth.ErrUnreadableHash, needs a
// password reset) and a plain mismatch (ErrInvalidPassword).
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("login: email lookup failed", zap.String("email", email), zap.Error(err))
		return "", err
	}

	ok, err := auth.VerifyPassword(password, u.Password)
	if err != nil {
		log.Warn("login: stored hash unreadable", zap.String("email", email))
		return "", err
	}
	if !ok {
		return "", ErrInvalidPassword
	}

	return s.tokens.CreateToken(u.ID, u.Role)
}

func (s *service) GetByID(ctx context.Context, id int) (User, error) {
	return s.repo.FindByID(ctx, id)
}
