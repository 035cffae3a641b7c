package ui

import (
	"context"
	"fmt"

	"github.com/DanEinstein/go_catalog/internal/catalog"
)

// CardAction names an action exposed by every rendered card.
type CardAction string

const (
	ActionEdit   CardAction = "edit"
	ActionDelete CardAction = "delete"
)

// Catalog owns the four widgets and routes card actions to them through a
// dispatch table keyed by action type. The table, not per-card handlers, is
// what lets the list grow and shrink without rebinding anything.
type Catalog struct {
	Lister  *Lister
	Creator *Creator
	Editor  *Editor
	Remover *Remover

	actions map[CardAction]func(context.Context, catalog.ID)
}

func NewCatalog(backend Backend, panel ListPanel, form ProductForm, modal EditModal, dialogs Dialogs) *Catalog {
	lister := NewLister(backend, panel)
	c := &Catalog{
		Lister:  lister,
		Creator: NewCreator(backend, form, lister),
		Editor:  NewEditor(backend, modal, dialogs, lister),
		Remover: NewRemover(backend, panel, dialogs),
	}
	c.actions = map[CardAction]func(context.Context, catalog.ID){
		ActionEdit:   c.Editor.Open,
		ActionDelete: c.Remover.Remove,
	}
	return c
}

// HandleCardAction dispatches a card action by product identifier. Unknown
// actions are rejected rather than ignored so a miswired front end fails loud.
func (c *Catalog) HandleCardAction(ctx context.Context, action CardAction, id catalog.ID) error {
	fn, ok := c.actions[action]
	if !ok {
		return fmt.Errorf("unknown card action %q", action)
	}
	fn(ctx, id)
	return nil
}
