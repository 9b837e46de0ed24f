package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 { return &v }

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"product_id", "name", "description", "price", "category_id", "supplier_id", "base_product_id",
	})
}

func TestRepository_ProductsByRef(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("SingleCategoryFilter", func(t *testing.T) {
		// Products A(cat=1,sup=2) and B(cat=1,sup=3) both match on
		// category alone.
		mock.ExpectQuery(`SELECT .+ FROM products WHERE category_id = \$1 ORDER BY product_id`).
			WithArgs(int32(1)).
			WillReturnRows(productRows().
				AddRow(1, "A", nil, 9.5, 1, 2, nil).
				AddRow(2, "B", nil, 3.0, 1, 3, nil))

		products, err := repo.ProductsByRef(ctx, ProductRef{CategoryID: int32Ptr(1)})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "A", products[0].Name)
		assert.Equal(t, "B", products[1].Name)
	})

	t.Run("SingleSupplierFilter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE supplier_id = \$1 ORDER BY product_id`).
			WithArgs(int32(3)).
			WillReturnRows(productRows().AddRow(2, "B", nil, 3.0, 1, 3, nil))

		products, err := repo.ProductsByRef(ctx, ProductRef{SupplierID: int32Ptr(3)})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int32(2), products[0].ID)
	})

	t.Run("SingleBaseProductFilter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE base_product_id = \$1 ORDER BY product_id`).
			WithArgs(int32(1)).
			WillReturnRows(productRows().AddRow(5, "A-variant", nil, 9.5, 1, 2, 1))

		products, err := repo.ProductsByRef(ctx, ProductRef{BaseProductID: int32Ptr(1)})
		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("TwoFiltersCombine", func(t *testing.T) {
		// With category and supplier both set, the absent base product is
		// compared as NULL: only A(cat=1,sup=2,base=null) matches.
		mock.ExpectQuery(`SELECT .+ FROM products WHERE category_id IS NOT DISTINCT FROM \$1 AND supplier_id IS NOT DISTINCT FROM \$2 AND base_product_id IS NOT DISTINCT FROM \$3 ORDER BY product_id`).
			WithArgs(1, 2, nil).
			WillReturnRows(productRows().AddRow(1, "A", nil, 9.5, 1, 2, nil))

		products, err := repo.ProductsByRef(ctx, ProductRef{
			CategoryID: int32Ptr(1),
			SupplierID: int32Ptr(2),
		})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "A", products[0].Name)
	})

	t.Run("AllAbsentCombine", func(t *testing.T) {
		// The degenerate zero-filter case still goes through the combined
		// form with all three compared as NULL.
		mock.ExpectQuery(`SELECT .+ FROM products WHERE category_id IS NOT DISTINCT FROM \$1 AND supplier_id IS NOT DISTINCT FROM \$2 AND base_product_id IS NOT DISTINCT FROM \$3 ORDER BY product_id`).
			WithArgs(nil, nil, nil).
			WillReturnRows(productRows().AddRow(9, "orphan", nil, 1.0, nil, nil, nil))

		products, err := repo.ProductsByRef(ctx, ProductRef{})
		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products`).
			WillReturnError(errors.New("db error"))

		_, err := repo.ProductsByRef(ctx, ProductRef{CategoryID: int32Ptr(1)})
		assert.Error(t, err)
	})
}

func TestRepository_ProductsByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Substring", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE name ILIKE \$1 ORDER BY product_id`).
			WithArgs("%phone%").
			WillReturnRows(productRows().AddRow(3, "smartphone", nil, 120.0, 1, 2, nil))

		products, err := repo.ProductsByName(ctx, "phone")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "smartphone", products[0].Name)
	})

	t.Run("NoMatch", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE name ILIKE \$1`).
			WithArgs("%zzz%").
			WillReturnRows(productRows())

		products, err := repo.ProductsByName(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestRepository_Categories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"category_id", "name", "parent_category_id"}).
			AddRow(1, "electronics", nil).
			AddRow(2, "phones", 1)

		mock.ExpectQuery(`SELECT category_id, name, parent_category_id FROM categories ORDER BY category_id`).
			WillReturnRows(rows)

		categories, err := repo.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Nil(t, categories[0].ParentCategoryID)
		require.NotNil(t, categories[1].ParentCategoryID)
		assert.Equal(t, int32(1), *categories[1].ParentCategoryID)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT category_id, name, parent_category_id FROM categories`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Categories(ctx)
		assert.Error(t, err)
	})
}
