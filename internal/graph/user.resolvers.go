package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mercato-be/internal/auth"
	"mercato-be/internal/logger"
)

// GetUser returns the account row for the caller's identity. Open to both
// roles.
func (r *Resolver) GetUser(ctx context.Context, args struct{ Token *string }) (*User, error) {
	ident, err := r.Guard.Require(r.bearer(ctx, args.Token), auth.RoleCustomer, auth.RoleSupplier)
	if err != nil {
		return nil, err
	}

	userID, err := ident.ParseUserID()
	if err != nil {
		return nil, err
	}

	u, err := r.UserSvc.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return userFromDomain(u), nil
}

// CustomerProfile is the resolver for the customerProfile query.
func (r *Resolver) CustomerProfile(ctx context.Context, args struct{ Token *string }) (*Customer, error) {
	ident, err := r.Guard.Require(r.bearer(ctx, args.Token), auth.RoleCustomer)
	if err != nil {
		return nil, err
	}

	c, err := r.CustomerSvc.ProfileByIdentity(ctx, ident)
	if err != nil {
		return nil, err
	}

	return customerFromDomain(c), nil
}

// SupplierProfile is the resolver for the supplierProfile query.
func (r *Resolver) SupplierProfile(ctx context.Context, args struct{ Token *string }) (*Supplier, error) {
	ident, err := r.Guard.Require(r.bearer(ctx, args.Token), auth.RoleSupplier)
	if err != nil {
		return nil, err
	}

	s, err := r.SupplierSvc.ProfileByIdentity(ctx, ident)
	if err != nil {
		return nil, err
	}

	return supplierFromDomain(s), nil
}

// RegisterUser creates the credential and returns a signed token.
func (r *Resolver) RegisterUser(ctx context.Context, args struct{ Input RegisterUserInput }) (string, error) {
	log := logger.FromCtx(ctx)

	token, err := r.UserSvc.Register(ctx, args.Input.Email, args.Input.Password, args.Input.Role)
	if err != nil {
		log.Warn("register failed", zap.String("email", args.Input.Email), zap.Error(err))
		return "", err
	}

	log.Info("user registered successfully", zap.String("email", args.Input.Email))
	return token, nil
}

// RegisterCustomer attaches a customer profile to the authenticated user.
func (r *Resolver) RegisterCustomer(ctx context.Context, args struct {
	Input RegisterCustomerInput
	Token *string
}) (*Customer, error) {
	ident, err := r.Guard.Require(r.bearer(ctx, args.Token), auth.RoleCustomer)
	if err != nil {
		return nil, err
	}

	c, err := r.CustomerSvc.Register(ctx, ident, args.Input.FirstName, args.Input.LastName)
	if err != nil {
		return nil, err
	}

	return customerFromDomain(c), nil
}

// RegisterSupplier attaches a supplier profile to the authenticated user.
func (r *Resolver) RegisterSupplier(ctx context.Context, args struct {
	Input RegisterSupplierInput
	Token *string
}) (*Supplier, error) {
	ident, err := r.Guard.Require(r.bearer(ctx, args.Token), auth.RoleSupplier)
	if err != nil {
		return nil, err
	}

	s, err := r.SupplierSvc.Register(ctx, ident, args.Input.ContactPhone)
	if err != nil {
		return nil, err
	}

	return supplierFromDomain(s), nil
}

// Login verifies credentials and returns a signed token.
func (r *Resolver) Login(ctx context.Context, args struct{ Input LoginInput }) (string, error) {
	token, err := r.UserSvc.Login(ctx, args.Input.Email, args.Input.Password)
	if err != nil {
		logger.FromCtx(ctx).Warn("login failed",
			zap.String("email", args.Input.Email),
			zap.String("reason", fmt.Sprint(err)),
		)
		return "", err
	}

	return token, nil
}
