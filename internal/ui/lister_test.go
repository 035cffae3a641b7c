package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanEinstein/go_catalog/internal/api"
	"github.com/DanEinstein/go_catalog/internal/catalog"
	"github.com/DanEinstein/go_catalog/internal/ui/messages"
)

func TestRefreshRendersCardsInBackendOrder(t *testing.T) {
	backend := &mockBackend{Products: []catalog.Product{
		{ID: "3", Name: "Zeta", Price: 1.5, Stock: 2},
		{ID: "1", Name: "Alpha", Price: 10, Stock: 0, Description: strptr("first")},
	}}
	panel := &fakePanel{}
	lister := NewLister(backend, panel)

	lister.Refresh(context.Background())

	require.Len(t, panel.Cards, 2)
	assert.Equal(t, catalog.ID("3"), panel.Cards[0].ID)
	assert.Equal(t, catalog.ID("1"), panel.Cards[1].ID)
	assert.Equal(t, "first", panel.Cards[1].Description)
	assert.Empty(t, panel.Cards[0].Description)
	assert.False(t, panel.Empty)
	assert.False(t, panel.Loading)
	assert.Equal(t, 1, panel.LoadingEnds)
}

func TestRefreshEmptyBackendShowsPlaceholder(t *testing.T) {
	panel := &fakePanel{}
	lister := NewLister(&mockBackend{}, panel)

	lister.Refresh(context.Background())

	assert.True(t, panel.Empty)
	assert.Empty(t, panel.Cards)
	assert.Empty(t, panel.Err)
}

func TestRefreshDistinguishesConnectivityFailure(t *testing.T) {
	backend := &mockBackend{ListErr: &api.UnreachableError{Err: errors.New("connection refused")}}
	panel := &fakePanel{}
	lister := NewLister(backend, panel)

	lister.Refresh(context.Background())

	assert.Equal(t, messages.BackendUnreachable, panel.Err)
	assert.Empty(t, panel.Cards)
	assert.False(t, panel.Loading, "loading indicator must be hidden on exit")
}

func TestRefreshApplicationFailureShowsGenericMessage(t *testing.T) {
	backend := &mockBackend{ListErr: &api.StatusError{Status: 500}}
	panel := &fakePanel{}
	lister := NewLister(backend, panel)

	lister.Refresh(context.Background())

	assert.Equal(t, messages.ListFailed, panel.Err)
	assert.False(t, panel.Loading)
}

func TestRefreshClearsPriorErrorAndContent(t *testing.T) {
	backend := &mockBackend{Products: []catalog.Product{{ID: "1", Name: "A"}}}
	panel := &fakePanel{Err: "stale", Cards: []Card{{ID: "9"}}}
	lister := NewLister(backend, panel)

	lister.Refresh(context.Background())

	assert.Empty(t, panel.Err)
	assert.Equal(t, 1, panel.ClearedCount)
	require.Len(t, panel.Cards, 1)
	assert.Equal(t, catalog.ID("1"), panel.Cards[0].ID)
}
