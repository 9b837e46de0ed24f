package catalog

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"mercato-be/internal/logger"
)

type Repository interface {
	ProductsByRef(ctx context.Context, ref ProductRef) ([]Product, error)
	ProductsByName(ctx context.Context, name string) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = "product_id, name, description, price, category_id, supplier_id, base_product_id"

// ProductsByRef filters products by the id triple. Exactly one present
// filter is a plain equality on that column; every other combination
// (none, two, or all three) compares all three columns, with absent
// filters matching NULL. The degenerate all-absent case keeps the
// combined form.
func (r *repository) ProductsByRef(ctx context.Context, ref ProductRef) ([]Product, error) {
	var (
		query string
		args  []interface{}
	)

	switch {
	case ref.CategoryID != nil && ref.SupplierID == nil && ref.BaseProductID == nil:
		query = "SELECT " + productColumns + " FROM products WHERE category_id = $1 ORDER BY product_id"
		args = []interface{}{*ref.CategoryID}
	case ref.CategoryID == nil && ref.SupplierID != nil && ref.BaseProductID == nil:
		query = "SELECT " + productColumns + " FROM products WHERE supplier_id = $1 ORDER BY product_id"
		args = []interface{}{*ref.SupplierID}
	case ref.CategoryID == nil && ref.SupplierID == nil && ref.BaseProductID != nil:
		query = "SELECT " + productColumns + " FROM products WHERE base_product_id = $1 ORDER BY product_id"
		args = []interface{}{*ref.BaseProductID}
	default:
		query = "SELECT " + productColumns + " FROM products" +
			" WHERE category_id IS NOT DISTINCT FROM $1" +
			" AND supplier_id IS NOT DISTINCT FROM $2" +
			" AND base_product_id IS NOT DISTINCT FROM $3" +
			" ORDER BY product_id"
		args = []interface{}{nullInt32(ref.CategoryID), nullInt32(ref.SupplierID), nullInt32(ref.BaseProductID)}
	}

	return r.queryProducts(ctx, query, args...)
}

func (r *repository) ProductsByName(ctx context.Context, name string) ([]Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE name ILIKE $1 ORDER BY product_id"
	return r.queryProducts(ctx, query, "%"+name+"%")
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("db: product query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.SupplierID, &p.BaseProductID); err != nil {
			log.Error("db: product scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) Categories(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx,
		"SELECT category_id, name, parent_category_id FROM categories ORDER BY category_id",
	)
	if err != nil {
		log.Error("db: category query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentCategoryID); err != nil {
			log.Error("db: category scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func nullInt32(p *int32) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *p, Valid: true}
}
