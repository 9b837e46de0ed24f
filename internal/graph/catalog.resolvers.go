package graph

import (
	"context"

	"mercato-be/internal/catalog"
)

// ProductsWithID is the resolver for the productsWithId query.
func (r *Resolver) ProductsWithID(ctx context.Context, args struct {
	CategoryID    *int32
	SupplierID    *int32
	BaseProductID *int32
}) ([]*Product, error) {
	products, err := r.CatalogSvc.ProductsByRef(ctx, catalog.ProductRef{
		CategoryID:    args.CategoryID,
		SupplierID:    args.SupplierID,
		BaseProductID: args.BaseProductID,
	})
	if err != nil {
		return nil, err
	}

	return productsFromCatalog(products), nil
}

// ProductsWithName is the resolver for the productsWithName query.
func (r *Resolver) ProductsWithName(ctx context.Context, args struct{ Name string }) ([]*Product, error) {
	products, err := r.CatalogSvc.ProductsByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}

	return productsFromCatalog(products), nil
}

// Categories is the resolver for the categories query.
func (r *Resolver) Categories(ctx context.Context) ([]*Category, error) {
	categories, err := r.CatalogSvc.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return categoriesFromCatalog(categories), nil
}
