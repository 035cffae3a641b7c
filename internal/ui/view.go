// Package ui holds the catalog client's widgets: the product list, the
// creation form, the edit modal and the delete flow. Widgets hold their view
// elements as interfaces acquired at construction, so the terminal front end
// and the tests can provide their own implementations.
package ui

import "github.com/DanEinstein/go_catalog/internal/catalog"

// Card is the view projection of one product in the list panel.
type Card struct {
	ID          catalog.ID
	Name        string
	Price       float64
	Stock       int
	Description string // empty when the product has none
}

// ListPanel is the product list display.
type ListPanel interface {
	SetLoading(on bool)
	ShowError(msg string)
	ClearError()
	// Clear removes all cards and the empty placeholder.
	Clear()
	// SetCards replaces the panel content with cards, in the given order.
	SetCards(cards []Card)
	// ShowEmpty replaces the panel content with the "no products" placeholder.
	ShowEmpty()
	// RemoveCard drops the card with the given id, leaving the rest intact.
	RemoveCard(id catalog.ID)
}

// FormValues are the raw strings read from the creation form's fields.
type FormValues struct {
	Name        string
	Price       string
	Description string
	Stock       string
}

// ProductForm is the new-product form. Success and error messages are
// mutually exclusive: showing one replaces the other.
type ProductForm interface {
	Values() FormValues
	Reset()
	ShowSuccess(msg string)
	ShowError(msg string)
	ClearMessage()
}

// ModalFields are the edit modal's fields, including the hidden identifier.
type ModalFields struct {
	ID          catalog.ID
	Name        string
	Price       string
	Description string
	Stock       string
}

// EditModal is the overlay used to edit a single product.
type EditModal interface {
	Populate(f ModalFields)
	Fields() ModalFields
	Show()
	Hide()
	Visible() bool
}

// Dialogs abstracts the blocking confirm and alert interactions so tests can
// substitute deterministic fakes.
type Dialogs interface {
	// Confirm asks a yes/no question and blocks for the answer.
	Confirm(prompt string) bool
	// Alert shows a blocking notification.
	Alert(msg string)
}
