package customer

type Customer struct {
	ID        int
	UserID    int
	FirstName string
	LastName  string
}
