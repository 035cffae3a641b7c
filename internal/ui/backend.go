package ui

import (
	"context"

	"github.com/DanEinstein/go_catalog/internal/catalog"
)

// Backend is the slice of the catalog API the widgets need. *api.Client
// satisfies it.
type Backend interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id catalog.ID) (*catalog.Product, error)
	CreateProduct(ctx context.Context, in catalog.ProductInput) (catalog.ID, error)
	UpdateProduct(ctx context.Context, id catalog.ID, in catalog.ProductInput) error
	DeleteProduct(ctx context.Context, id catalog.ID) error
}
