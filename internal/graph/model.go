package graph

// Response types. Fields are resolved by name thanks to UseFieldResolvers.

type Product struct {
	ProductID     int32
	Name          string
	Description   *string
	Price         float64
	CategoryID    *int32
	SupplierID    *int32
	BaseProductID *int32
}

type Category struct {
	CategoryID       int32
	Name             string
	ParentCategoryID *int32
}

// User deliberately omits the password hash.
type User struct {
	UserID int32
	Email  string
	Role   string
}

type Customer struct {
	CustomerID int32
	UserID     int32
	FirstName  string
	LastName   string
}

type Supplier struct {
	SupplierID   int32
	UserID       int32
	ContactPhone string
}

type RegisterUserInput struct {
	Email    string
	Password string
	Role     string
}

type RegisterCustomerInput struct {
	FirstName string
	LastName  string
}

type RegisterSupplierInput struct {
	ContactPhone string
}

type LoginInput struct {
	Email    string
	Password string
}
