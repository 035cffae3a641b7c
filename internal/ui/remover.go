package ui

import (
	"context"
	"fmt"

	"github.com/DanEinstein/go_catalog/internal/catalog"
)

// Remover deletes a product after confirmation and drops its card from the
// panel without a full re-fetch.
type Remover struct {
	backend Backend
	panel   ListPanel
	dialogs Dialogs
}

func NewRemover(backend Backend, panel ListPanel, dialogs Dialogs) *Remover {
	return &Remover{backend: backend, panel: panel, dialogs: dialogs}
}

// Remove asks for confirmation before sending anything. Declining is a no-op.
// On failure the card stays in place, consistent with the failed delete.
func (r *Remover) Remove(ctx context.Context, id catalog.ID) {
	if !r.dialogs.Confirm(fmt.Sprintf("Delete product %s? This cannot be undone.", id)) {
		return
	}

	if err := r.backend.DeleteProduct(ctx, id); err != nil {
		r.dialogs.Alert("Delete failed: " + err.Error())
		return
	}

	r.panel.RemoveCard(id)
}
