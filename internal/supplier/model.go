package supplier

type Supplier struct {
	ID           int
	UserID       int
	ContactPhone string
}
