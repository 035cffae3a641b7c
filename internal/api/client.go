// Package api implements the typed HTTP client for the catalog backend's REST
// contract. Every operation is a single stateless round trip; nothing is
// retried and no timeout is imposed beyond the caller's context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/DanEinstein/go_catalog/internal/catalog"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the backend at baseURL, e.g. "http://localhost:8000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// NewWithHTTPClient is for tests and callers that need transport control.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

type productsEnvelope struct {
	Products []catalog.Product `json:"products"`
}

type productEnvelope struct {
	Product catalog.Product `json:"product"`
}

type customersEnvelope struct {
	Customers []catalog.Customer `json:"customers"`
}

type customerEnvelope struct {
	Customer catalog.Customer `json:"customer"`
}

type createdEnvelope struct {
	Message    string     `json:"message"`
	ProductID  catalog.ID `json:"product_id"`
	CustomerID catalog.ID `json:"customer_id"`
}

// ListProducts fetches every product, in backend order.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/products", nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id catalog.ID) (*catalog.Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id.String()), nil, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

// CreateProduct creates a product and returns the backend-assigned id, which
// may be empty if the backend chose not to report one.
func (c *Client) CreateProduct(ctx context.Context, in catalog.ProductInput) (catalog.ID, error) {
	var env createdEnvelope
	if err := c.do(ctx, http.MethodPost, "/products", in, &env); err != nil {
		return "", err
	}
	return env.ProductID, nil
}

// UpdateProduct replaces the mutable fields of a product.
func (c *Client) UpdateProduct(ctx context.Context, id catalog.ID, in catalog.ProductInput) error {
	return c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id.String()), in, nil)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id catalog.ID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id.String()), nil, nil)
}

func (c *Client) ListCustomers(ctx context.Context) ([]catalog.Customer, error) {
	var env customersEnvelope
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &env); err != nil {
		return nil, err
	}
	return env.Customers, nil
}

func (c *Client) GetCustomer(ctx context.Context, id catalog.ID) (*catalog.Customer, error) {
	var env customerEnvelope
	if err := c.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id.String()), nil, &env); err != nil {
		return nil, err
	}
	return &env.Customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in catalog.CustomerInput) (catalog.ID, error) {
	var env createdEnvelope
	if err := c.do(ctx, http.MethodPost, "/customers", in, &env); err != nil {
		return "", err
	}
	return env.CustomerID, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id catalog.ID, in catalog.CustomerInput) error {
	return c.do(ctx, http.MethodPut, "/customers/"+url.PathEscape(id.String()), in, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id catalog.ID) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id.String()), nil, nil)
}

// do performs one round trip. A transport failure comes back as
// *UnreachableError, a non-2xx response as *StatusError. When out is non-nil
// the response body is decoded into it; an empty 2xx body is accepted.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Detail: errorDetail(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the backend's "detail" message from an error response.
// A failed call may return a non-JSON body (a proxy's plain-text 502, say), so
// the body is parsed only when the response declares a JSON content type.
func errorDetail(resp *http.Response) string {
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		return ""
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
