// Package server implements catalogd, a reference backend speaking the
// catalog REST contract: products and customers CRUD with {detail} error
// bodies and partial updates.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DanEinstein/go_catalog/internal/server/store"
)

type Server struct {
	store store.Store
}

// New builds the catalogd handler over st.
func New(st store.Store) http.Handler {
	s := &Server{store: st}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Post("/", s.createProduct)
		r.Get("/{id}", s.getProduct)
		r.Put("/{id}", s.updateProduct)
		r.Delete("/{id}", s.deleteProduct)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", s.listCustomers)
		r.Post("/", s.createCustomer)
		r.Get("/{id}", s.getCustomer)
		r.Put("/{id}", s.updateCustomer)
		r.Delete("/{id}", s.deleteCustomer)
	})

	return r
}

type productDTO struct {
	ID          int64   `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	Stock       int     `json:"stock_quantity"`
}

func toProductDTO(p store.Product) productDTO {
	return productDTO{ID: p.ID, Name: p.Name, Price: p.Price, Description: p.Description, Stock: p.Stock}
}

type customerDTO struct {
	ID        int64   `json:"customer_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

func toCustomerDTO(c store.Customer) customerDTO {
	return customerDTO{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Address: c.Address, Phone: c.Phone}
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.ListProducts(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	dtos := make([]productDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	respondJSON(w, http.StatusOK, map[string]any{"products": dtos})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := s.store.GetProduct(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"product": toProductDTO(*p)})
}

type createProductDTO struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock_quantity"`
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var dto createProductDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if dto.Name == nil || *dto.Name == "" || dto.Price == nil || dto.Stock == nil {
		respondDetail(w, http.StatusUnprocessableEntity, "name, price and stock_quantity are required")
		return
	}

	p := store.Product{Name: *dto.Name, Price: *dto.Price, Description: dto.Description, Stock: *dto.Stock}
	id, err := s.store.CreateProduct(r.Context(), p)
	if errors.Is(err, store.ErrConflict) {
		respondDetail(w, http.StatusBadRequest, "Database error: duplicate product name")
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":    "Product created successfully",
		"product_id": id,
	})
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch struct {
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
		Stock       *int     `json:"stock_quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	p := store.ProductPatch{Name: patch.Name, Price: patch.Price, Description: patch.Description, Stock: patch.Stock}
	if p.Empty() {
		respondDetail(w, http.StatusBadRequest, "No fields to update")
		return
	}

	err := s.store.UpdateProduct(r.Context(), id, p)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondDetail(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, store.ErrConflict):
		respondDetail(w, http.StatusBadRequest, "Database error: duplicate product name")
	case err != nil:
		respondStoreError(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
	}
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := s.store.DeleteProduct(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondDetail(w, http.StatusNotFound, "Product not found")
	case err != nil:
		respondStoreError(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
	}
}

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.store.ListCustomers(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	dtos := make([]customerDTO, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, toCustomerDTO(c))
	}
	respondJSON(w, http.StatusOK, map[string]any{"customers": dtos})
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := s.store.GetCustomer(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"customer": toCustomerDTO(*c)})
}

type createCustomerDTO struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var dto createCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if dto.FirstName == nil || dto.LastName == nil || dto.Email == nil || *dto.Email == "" {
		respondDetail(w, http.StatusUnprocessableEntity, "first_name, last_name and email are required")
		return
	}

	c := store.Customer{FirstName: *dto.FirstName, LastName: *dto.LastName, Email: *dto.Email, Address: dto.Address, Phone: dto.Phone}
	id, err := s.store.CreateCustomer(r.Context(), c)
	if errors.Is(err, store.ErrConflict) {
		respondDetail(w, http.StatusBadRequest, "Database error: duplicate email")
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":     "Customer created successfully",
		"customer_id": id,
	})
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto createCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	patch := store.CustomerPatch{FirstName: dto.FirstName, LastName: dto.LastName, Email: dto.Email, Address: dto.Address, Phone: dto.Phone}
	if patch.Empty() {
		respondDetail(w, http.StatusBadRequest, "No fields to update")
		return
	}

	err := s.store.UpdateCustomer(r.Context(), id, patch)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondDetail(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, store.ErrConflict):
		respondDetail(w, http.StatusBadRequest, "Database error: duplicate email")
	case err != nil:
		respondStoreError(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "Customer updated successfully"})
	}
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := s.store.DeleteCustomer(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondDetail(w, http.StatusNotFound, "Customer not found")
	case err != nil:
		respondStoreError(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
	}
}

// pathID parses the {id} path parameter. Identifiers are numeric in storage
// even though clients treat them as opaque.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "invalid id")
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

func respondStoreError(w http.ResponseWriter, err error) {
	slog.Error("store error", "error", err)
	respondDetail(w, http.StatusInternalServerError, "internal server error")
}
