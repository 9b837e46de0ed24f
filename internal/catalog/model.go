package catalog

type Product struct {
	ID            int32
	Name          string
	Description   *string
	Price         float64
	CategoryID    *int32
	SupplierID    *int32
	BaseProductID *int32
}

type Category struct {
	ID               int32
	Name             string
	ParentCategoryID *int32
}

// ProductRef is the optional id-filter triple for product lookups.
type ProductRef struct {
	CategoryID    *int32
	SupplierID    *int32
	BaseProductID *int32
}
