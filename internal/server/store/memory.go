package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory Store for development and tests. IDs are assigned
// from a per-table counter, mirroring the SQL schema's auto-increment keys.
type Memory struct {
	mu             sync.RWMutex
	products       map[int64]Product
	customers      map[int64]Customer
	nextProductID  int64
	nextCustomerID int64
}

func NewMemory() *Memory {
	return &Memory{
		products:       make(map[int64]Product),
		customers:      make(map[int64]Customer),
		nextProductID:  1,
		nextCustomerID: 1,
	}
}

func (m *Memory) ListProducts(context.Context) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetProduct(_ context.Context, id int64) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) CreateProduct(_ context.Context, p Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.products {
		if existing.Name == p.Name {
			return 0, ErrConflict
		}
	}
	p.ID = m.nextProductID
	m.nextProductID++
	m.products[p.ID] = p
	return p.ID, nil
}

func (m *Memory) UpdateProduct(_ context.Context, id int64, patch ProductPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return ErrNotFound
	}
	if patch.Name != nil {
		for _, existing := range m.products {
			if existing.ID != id && existing.Name == *patch.Name {
				return ErrConflict
			}
		}
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	m.products[id] = p
	return nil
}

func (m *Memory) DeleteProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *Memory) ListCustomers(context.Context) ([]Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetCustomer(_ context.Context, id int64) (*Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) CreateCustomer(_ context.Context, c Customer) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.customers {
		if existing.Email == c.Email {
			return 0, ErrConflict
		}
	}
	c.ID = m.nextCustomerID
	m.nextCustomerID++
	m.customers[c.ID] = c
	return c.ID, nil
}

func (m *Memory) UpdateCustomer(_ context.Context, id int64, patch CustomerPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return ErrNotFound
	}
	if patch.Email != nil {
		for _, existing := range m.customers {
			if existing.ID != id && existing.Email == *patch.Email {
				return ErrConflict
			}
		}
		c.Email = *patch.Email
	}
	if patch.FirstName != nil {
		c.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		c.LastName = *patch.LastName
	}
	if patch.Address != nil {
		c.Address = patch.Address
	}
	if patch.Phone != nil {
		c.Phone = patch.Phone
	}
	m.customers[id] = c
	return nil
}

func (m *Memory) DeleteCustomer(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return ErrNotFound
	}
	delete(m.customers, id)
	return nil
}

func (m *Memory) Close() error { return nil }
