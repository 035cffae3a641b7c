package ui

import (
	"context"

	"github.com/DanEinstein/go_catalog/internal/catalog"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	Products  []catalog.Product
	Product   *catalog.Product
	ListErr   error
	GetErr    error
	CreateErr error
	UpdErr    error
	DelErr    error

	ListCalls   int
	CreatedWith *catalog.ProductInput
	UpdatedID   catalog.ID
	UpdatedWith *catalog.ProductInput
	DeletedID   catalog.ID
	DeleteCalls int
}

func (m *mockBackend) ListProducts(context.Context) ([]catalog.Product, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Products, nil
}

func (m *mockBackend) GetProduct(_ context.Context, id catalog.ID) (*catalog.Product, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Product, nil
}

func (m *mockBackend) CreateProduct(_ context.Context, in catalog.ProductInput) (catalog.ID, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.CreatedWith = &in
	return "1", nil
}

func (m *mockBackend) UpdateProduct(_ context.Context, id catalog.ID, in catalog.ProductInput) error {
	if m.UpdErr != nil {
		return m.UpdErr
	}
	m.UpdatedID = id
	m.UpdatedWith = &in
	return nil
}

func (m *mockBackend) DeleteProduct(_ context.Context, id catalog.ID) error {
	m.DeleteCalls++
	if m.DelErr != nil {
		return m.DelErr
	}
	m.DeletedID = id
	return nil
}

// fakePanel records the list panel state transitions.
type fakePanel struct {
	Loading      bool
	LoadingEnds  int
	Err          string
	Cards        []Card
	Empty        bool
	ClearedCount int
}

func (f *fakePanel) SetLoading(on bool) {
	f.Loading = on
	if !on {
		f.LoadingEnds++
	}
}
func (f *fakePanel) ShowError(msg string) { f.Err = msg }
func (f *fakePanel) ClearError()          { f.Err = "" }
func (f *fakePanel) Clear() {
	f.Cards = nil
	f.Empty = false
	f.ClearedCount++
}
func (f *fakePanel) SetCards(cards []Card) {
	f.Cards = cards
	f.Empty = false
}
func (f *fakePanel) ShowEmpty() {
	f.Cards = nil
	f.Empty = true
}
func (f *fakePanel) RemoveCard(id catalog.ID) {
	for i, c := range f.Cards {
		if c.ID == id {
			f.Cards = append(f.Cards[:i], f.Cards[i+1:]...)
			return
		}
	}
}

// fakeForm holds raw field values and the message area state.
type fakeForm struct {
	Vals       FormValues
	ResetCount int
	Success    string
	Error      string
}

func (f *fakeForm) Values() FormValues { return f.Vals }
func (f *fakeForm) Reset() {
	f.Vals = FormValues{}
	f.ResetCount++
}
func (f *fakeForm) ShowSuccess(msg string) { f.Success, f.Error = msg, "" }
func (f *fakeForm) ShowError(msg string)   { f.Error, f.Success = msg, "" }
func (f *fakeForm) ClearMessage()          { f.Success, f.Error = "", "" }

// fakeModal records populate/show/hide calls.
type fakeModal struct {
	Populated ModalFields
	Shown     bool
}

func (f *fakeModal) Populate(m ModalFields) { f.Populated = m }
func (f *fakeModal) Fields() ModalFields    { return f.Populated }
func (f *fakeModal) Show()                  { f.Shown = true }
func (f *fakeModal) Hide()                  { f.Shown = false }
func (f *fakeModal) Visible() bool          { return f.Shown }

// fakeDialogs answers Confirm with a canned response and records alerts.
type fakeDialogs struct {
	ConfirmAnswer bool
	ConfirmPrompt string
	ConfirmCalls  int
	Alerts        []string
}

func (f *fakeDialogs) Confirm(prompt string) bool {
	f.ConfirmCalls++
	f.ConfirmPrompt = prompt
	return f.ConfirmAnswer
}

func (f *fakeDialogs) Alert(msg string) { f.Alerts = append(f.Alerts, msg) }

func strptr(s string) *string { return &s }
