package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestMemoryProductCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.CreateProduct(ctx, Product{Name: "Widget", Price: 9.99, Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := m.CreateProduct(ctx, Product{Name: "Gadget", Price: 1, Stock: 0, Description: strptr("shiny")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	products, err := m.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "Gadget", products[1].Name)

	p, err := m.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, p.Description)

	require.NoError(t, m.DeleteProduct(ctx, id))
	_, err = m.GetProduct(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryProductPartialUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	id, err := m.CreateProduct(ctx, Product{Name: "Widget", Price: 9.99, Stock: 3})
	require.NoError(t, err)

	price := 12.5
	require.NoError(t, m.UpdateProduct(ctx, id, ProductPatch{Price: &price}))

	p, err := m.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name, "unset fields untouched")
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, 3, p.Stock)
}

func TestMemoryProductNameConflict(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.CreateProduct(ctx, Product{Name: "Widget"})
	require.NoError(t, err)

	_, err = m.CreateProduct(ctx, Product{Name: "Widget"})
	assert.ErrorIs(t, err, ErrConflict)

	id, err := m.CreateProduct(ctx, Product{Name: "Gadget"})
	require.NoError(t, err)
	name := "Widget"
	assert.ErrorIs(t, m.UpdateProduct(ctx, id, ProductPatch{Name: &name}), ErrConflict)
}

func TestMemoryUpdateMissingProduct(t *testing.T) {
	m := NewMemory()
	price := 1.0
	assert.ErrorIs(t, m.UpdateProduct(context.Background(), 42, ProductPatch{Price: &price}), ErrNotFound)
	assert.ErrorIs(t, m.DeleteProduct(context.Background(), 42), ErrNotFound)
}

func TestMemoryCustomerCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.CreateCustomer(ctx, Customer{FirstName: "Ada", LastName: "L", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = m.CreateCustomer(ctx, Customer{FirstName: "Other", LastName: "A", Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrConflict)

	phone := "555-0100"
	require.NoError(t, m.UpdateCustomer(ctx, id, CustomerPatch{Phone: &phone}))

	c, err := m.GetCustomer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.FirstName)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "555-0100", *c.Phone)

	require.NoError(t, m.DeleteCustomer(ctx, id))
	assert.ErrorIs(t, m.DeleteCustomer(ctx, id), ErrNotFound)
}
