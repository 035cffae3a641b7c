package ui

import (
	"context"

	"github.com/DanEinstein/go_catalog/internal/api"
	"github.com/DanEinstein/go_catalog/internal/ui/messages"
)

// Lister loads all products and renders them into the list panel.
type Lister struct {
	backend Backend
	panel   ListPanel
}

func NewLister(backend Backend, panel ListPanel) *Lister {
	return &Lister{backend: backend, panel: panel}
}

// Refresh replaces the panel content with the current backend state. The
// loading indicator is always hidden on exit, whatever the outcome.
func (l *Lister) Refresh(ctx context.Context) {
	l.panel.SetLoading(true)
	defer l.panel.SetLoading(false)

	l.panel.ClearError()
	l.panel.Clear()

	products, err := l.backend.ListProducts(ctx)
	if err != nil {
		if api.IsUnreachable(err) {
			l.panel.ShowError(messages.BackendUnreachable)
		} else {
			l.panel.ShowError(messages.ListFailed)
		}
		return
	}

	if len(products) == 0 {
		l.panel.ShowEmpty()
		return
	}

	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = Card{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		}
		if p.Description != nil {
			cards[i].Description = *p.Description
		}
	}
	l.panel.SetCards(cards)
}
