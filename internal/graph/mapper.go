package graph

import (
	"mercato-be/internal/catalog"
	"mercato-be/internal/customer"
	"mercato-be/internal/supplier"
	"mercato-be/internal/user"
)

func productFromCatalog(p catalog.Product) *Product {
	return &Product{
		ProductID:     p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		BaseProductID: p.BaseProductID,
	}
}

func productsFromCatalog(items []catalog.Product) []*Product {
	out := make([]*Product, 0, len(items))
	for _, p := range items {
		out = append(out, productFromCatalog(p))
	}
	return out
}

func categoriesFromCatalog(items []catalog.Category) []*Category {
	out := make([]*Category, 0, len(items))
	for _, c := range items {
		out = append(out, &Category{
			CategoryID:       c.ID,
			Name:             c.Name,
			ParentCategoryID: c.ParentCategoryID,
		})
	}
	return out
}

func userFromDomain(u user.User) *User {
	return &User{
		UserID: int32(u.ID),
		Email:  u.Email,
		Role:   string(u.Role),
	}
}

func customerFromDomain(c customer.Customer) *Customer {
	return &Customer{
		CustomerID: int32(c.ID),
		UserID:     int32(c.UserID),
		FirstName:  c.FirstName,
		LastName:   c.LastName,
	}
}

func supplierFromDomain(s supplier.Supplier) *Supplier {
	return &Supplier{
		SupplierID:   int32(s.ID),
		UserID:       int32(s.UserID),
		ContactPhone: s.ContactPhone,
	}
}
