package term

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanEinstein/go_catalog/internal/api"
	"github.com/DanEinstein/go_catalog/internal/server"
	"github.com/DanEinstein/go_catalog/internal/server/store"
	"github.com/DanEinstein/go_catalog/internal/ui/messages"
)

// runSession drives a scripted session against a real catalogd handler backed
// by the in-memory store.
func runSession(t *testing.T, st store.Store, script string) string {
	t.Helper()
	srv := httptest.NewServer(server.New(st))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	s := NewSession(api.NewWithHTTPClient(srv.URL, srv.Client()), strings.NewReader(script), &out)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestSessionEmptyCatalog(t *testing.T) {
	out := runSession(t, store.NewMemory(), "q\n")
	assert.Contains(t, out, "Loading products...")
	assert.Contains(t, out, messages.NoProducts)
}

func TestSessionCreateAndList(t *testing.T) {
	// add: name, price, description, stock; then quit
	script := "a\nWidget\n9.99\nA fine widget\n3\nq\n"
	out := runSession(t, store.NewMemory(), script)

	assert.Contains(t, out, "OK: "+messages.ProductCreated)
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "$9.99")
}

func TestSessionDeleteDeclined(t *testing.T) {
	st := store.NewMemory()
	_, err := st.CreateProduct(context.Background(), store.Product{Name: "Widget", Price: 1, Stock: 1})
	require.NoError(t, err)

	out := runSession(t, st, "d 1\nn\nq\n")
	assert.Contains(t, out, "[y/N]")

	products, err := st.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1, "declined confirmation must not delete")
}

func TestSessionDeleteConfirmed(t *testing.T) {
	st := store.NewMemory()
	_, err := st.CreateProduct(context.Background(), store.Product{Name: "Widget", Price: 1, Stock: 1})
	require.NoError(t, err)

	runSession(t, st, "d 1\ny\nq\n")

	products, err := st.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSessionEditKeepsValuesOnEmptyInput(t *testing.T) {
	st := store.NewMemory()
	_, err := st.CreateProduct(context.Background(), store.Product{Name: "Widget", Price: 9.99, Stock: 3})
	require.NoError(t, err)

	// edit 1: keep name, change price, keep description and stock, save
	script := "e 1\n\n12.50\n\n\ny\nq\n"
	out := runSession(t, st, script)
	assert.Contains(t, out, "Editing product 1")

	p, err := st.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, 3, p.Stock)
}

func TestSessionEditCancelled(t *testing.T) {
	st := store.NewMemory()
	_, err := st.CreateProduct(context.Background(), store.Product{Name: "Widget", Price: 9.99, Stock: 3})
	require.NoError(t, err)

	// decline the save prompt: edits are discarded
	script := "e 1\nRenamed\n\n\n\nn\nq\n"
	runSession(t, st, script)

	p, err := st.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
}

func TestSessionUnknownProductAlert(t *testing.T) {
	out := runSession(t, store.NewMemory(), "e 42\nq\n")
	assert.Contains(t, out, "Product not found")
}
