// Package term renders the catalog widgets on a terminal: cards as text
// blocks, the modal as a prompted field editor, dialogs as y/N prompts.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DanEinstein/go_catalog/internal/catalog"
	"github.com/DanEinstein/go_catalog/internal/ui"
	"github.com/DanEinstein/go_catalog/internal/ui/messages"
)

// Page owns the terminal implementations of the view elements. The widgets
// receive them once at construction and never look anything up ambiently.
type Page struct {
	out io.Writer
	in  *bufio.Reader

	List    *ListPanel
	Form    *Form
	Modal   *Modal
	Dialogs *Dialogs
}

func NewPage(in io.Reader, out io.Writer) *Page {
	reader := bufio.NewReader(in)
	return &Page{
		out:     out,
		in:      reader,
		List:    &ListPanel{out: out},
		Form:    &Form{out: out},
		Modal:   &Modal{out: out},
		Dialogs: &Dialogs{in: reader, out: out},
	}
}

func (p *Page) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ListPanel renders the product list. It retains the current cards so a
// single-card removal can redraw the rest without a re-fetch.
type ListPanel struct {
	out   io.Writer
	cards []ui.Card
	empty bool
}

func (p *ListPanel) SetLoading(on bool) {
	if on {
		fmt.Fprintln(p.out, "Loading products...")
	}
}

func (p *ListPanel) ShowError(msg string) {
	fmt.Fprintln(p.out, "ERROR:", msg)
}

// ClearError is a no-op on a scrolling terminal: there is no banner to take
// down, the next render just writes below it.
func (p *ListPanel) ClearError() {}

func (p *ListPanel) Clear() {
	p.cards = nil
	p.empty = false
}

func (p *ListPanel) SetCards(cards []ui.Card) {
	p.cards = cards
	p.empty = false
	p.render()
}

func (p *ListPanel) ShowEmpty() {
	p.cards = nil
	p.empty = true
	p.render()
}

func (p *ListPanel) RemoveCard(id catalog.ID) {
	for i, c := range p.cards {
		if c.ID == id {
			p.cards = append(p.cards[:i], p.cards[i+1:]...)
			p.render()
			return
		}
	}
}

func (p *ListPanel) render() {
	if p.empty {
		fmt.Fprintln(p.out, messages.NoProducts)
		return
	}
	for _, c := range p.cards {
		fmt.Fprint(p.out, FormatCard(c))
	}
}

// FormatCard renders one card. Prices always carry two fraction digits.
func FormatCard(c ui.Card) string {
	desc := c.Description
	if desc == "" {
		desc = messages.NoDescription
	}
	return fmt.Sprintf("[%s] %s  $%.2f  (stock: %d)\n    %s\n", c.ID, c.Name, c.Price, c.Stock, desc)
}

// Form holds the creation form's raw values. The session fills them from
// prompts before submitting.
type Form struct {
	out  io.Writer
	vals ui.FormValues
}

func (f *Form) Set(vals ui.FormValues) { f.vals = vals }

func (f *Form) Values() ui.FormValues { return f.vals }

func (f *Form) Reset() { f.vals = ui.FormValues{} }

func (f *Form) ShowSuccess(msg string) {
	fmt.Fprintln(f.out, "OK:", msg)
}

func (f *Form) ShowError(msg string) {
	fmt.Fprintln(f.out, msg)
}

func (f *Form) ClearMessage() {}

// Modal holds the edit fields, including the hidden identifier, and whether
// the edit view is open.
type Modal struct {
	out     io.Writer
	fields  ui.ModalFields
	visible bool
}

func (m *Modal) Populate(f ui.ModalFields) { m.fields = f }

func (m *Modal) Fields() ui.ModalFields { return m.fields }

func (m *Modal) Show() {
	m.visible = true
	fmt.Fprintf(m.out, "Editing product %s (empty input keeps the current value)\n", m.fields.ID)
}

func (m *Modal) Hide() { m.visible = false }

func (m *Modal) Visible() bool { return m.visible }

// Dialogs implements blocking confirm/alert over the terminal.
type Dialogs struct {
	in  *bufio.Reader
	out io.Writer
}

func (d *Dialogs) Confirm(prompt string) bool {
	fmt.Fprintf(d.out, "%s [y/N] ", prompt)
	line, err := d.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (d *Dialogs) Alert(msg string) {
	fmt.Fprintln(d.out, "!", msg)
}
