package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"mercato-be/internal/auth"
	"mercato-be/internal/catalog"
	"mercato-be/internal/customer"
	"mercato-be/internal/middleware"
	"mercato-be/internal/supplier"
	"mercato-be/internal/user"
)

type Resolver struct {
	UserSvc     user.Service
	CustomerSvc customer.Service
	SupplierSvc supplier.Service
	CatalogSvc  catalog.Service
	Guard       *auth.RoleGuard
}

func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r, graphql.UseFieldResolvers())
}

// bearer resolves the effective token: the explicit argument wins, the
// bearer token captured by the HTTP middleware is the fallback.
func (r *Resolver) bearer(ctx context.Context, arg *string) string {
	if arg != nil && *arg != "" {
		return *arg
	}
	return middleware.BearerTokenFromContext(ctx)
}
