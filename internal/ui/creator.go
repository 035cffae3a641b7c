package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanEinstein/go_catalog/internal/catalog"
	"github.com/DanEinstein/go_catalog/internal/ui/messages"
)

// Creator submits the new-product form.
type Creator struct {
	backend Backend
	form    ProductForm
	lister  *Lister
}

func NewCreator(backend Backend, form ProductForm, lister *Lister) *Creator {
	return &Creator{backend: backend, form: form, lister: lister}
}

// Submit parses the form's raw values and creates the product. On success the
// form is cleared and the list refreshed; on failure the form keeps its values
// and an error message is shown instead.
func (c *Creator) Submit(ctx context.Context) {
	vals := c.form.Values()

	in, err := parseProductInput(vals.Name, vals.Price, vals.Description, vals.Stock)
	if err != nil {
		c.form.ShowError("Error: " + err.Error())
		return
	}

	if _, err := c.backend.CreateProduct(ctx, *in); err != nil {
		c.form.ShowError("Error: " + err.Error())
		return
	}

	c.form.ShowSuccess(messages.ProductCreated)
	c.form.Reset()
	c.lister.Refresh(ctx)
}

// parseProductInput converts raw field strings into a request payload. A
// value that does not parse as a number is rejected here, before any request
// goes out.
func parseProductInput(name, price, description, stock string) (*catalog.ProductInput, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return nil, fmt.Errorf("%s", messages.PriceNotNumeric)
	}
	s, err := strconv.Atoi(strings.TrimSpace(stock))
	if err != nil {
		return nil, fmt.Errorf("%s", messages.StockNotNumeric)
	}
	return &catalog.ProductInput{
		Name:        strings.TrimSpace(name),
		Price:       p,
		Description: strings.TrimSpace(description),
		Stock:       s,
	}, nil
}
