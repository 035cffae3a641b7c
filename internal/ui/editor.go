package ui

import (
	"context"
	"strconv"

	"github.com/DanEinstein/go_catalog/internal/catalog"
)

// Editor drives the edit modal: open loads one product into it, submit sends
// the update, close discards in-progress edits.
type Editor struct {
	backend Backend
	modal   EditModal
	dialogs Dialogs
	lister  *Lister
}

func NewEditor(backend Backend, modal EditModal, dialogs Dialogs, lister *Lister) *Editor {
	return &Editor{backend: backend, modal: modal, dialogs: dialogs, lister: lister}
}

// Open fetches the product and reveals the modal populated with its fields.
// On failure the modal stays hidden and the error is surfaced as an alert.
func (e *Editor) Open(ctx context.Context, id catalog.ID) {
	p, err := e.backend.GetProduct(ctx, id)
	if err != nil {
		e.dialogs.Alert("Could not load product: " + err.Error())
		return
	}

	f := ModalFields{
		ID:    p.ID,
		Name:  p.Name,
		Price: strconv.FormatFloat(p.Price, 'f', 2, 64),
		Stock: strconv.Itoa(p.Stock),
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	e.modal.Populate(f)
	e.modal.Show()
}

// Submit sends the modal's fields as an update. On success the modal is
// hidden and the list refreshed; on failure it stays open so the user can
// retry or cancel.
func (e *Editor) Submit(ctx context.Context) {
	f := e.modal.Fields()

	in, err := parseProductInput(f.Name, f.Price, f.Description, f.Stock)
	if err != nil {
		e.dialogs.Alert("Update failed: " + err.Error())
		return
	}

	if err := e.backend.UpdateProduct(ctx, f.ID, *in); err != nil {
		e.dialogs.Alert("Update failed: " + err.Error())
		return
	}

	e.modal.Hide()
	e.lister.Refresh(ctx)
}

// Close hides the modal unconditionally, discarding any edits.
func (e *Editor) Close() {
	e.modal.Hide()
}
