// Package store defines the catalogd storage contract and its two
// implementations: an in-memory map store and Postgres.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
	Stock       int
}

// ProductPatch carries only the fields a partial update provided. A nil field
// leaves the stored value unchanged.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Description *string
	Stock       *int
}

func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Description == nil && p.Stock == nil
}

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Address   *string
	Phone     *string
}

type CustomerPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Address   *string
	Phone     *string
}

func (p CustomerPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Address == nil && p.Phone == nil
}

type Store interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	// CreateProduct returns the assigned id. Product names are unique;
	// a duplicate yields ErrConflict.
	CreateProduct(ctx context.Context, p Product) (int64, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) error
	DeleteProduct(ctx context.Context, id int64) error

	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	// CreateCustomer returns the assigned id. Emails are unique.
	CreateCustomer(ctx context.Context, c Customer) (int64, error)
	UpdateCustomer(ctx context.Context, id int64, patch CustomerPatch) error
	DeleteCustomer(ctx context.Context, id int64) error

	Close() error
}
