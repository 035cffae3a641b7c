package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DanEinstein/go_catalog/internal/catalog"
	"github.com/DanEinstein/go_catalog/internal/ui"
)

// Session is the interactive loop: it reads one command at a time and invokes
// exactly one widget handler per command, so handlers never run concurrently.
type Session struct {
	page *Page
	cat  *ui.Catalog
}

func NewSession(backend ui.Backend, in io.Reader, out io.Writer) *Session {
	page := NewPage(in, out)
	return &Session{
		page: page,
		cat:  ui.NewCatalog(backend, page.List, page.Form, page.Modal, page.Dialogs),
	}
}

const helpText = `Commands:
  r             refresh the product list
  a             add a product
  e <id>        edit a product
  d <id>        delete a product
  h             show this help
  q             quit`

// Run loads the list once and then processes commands until quit or EOF.
func (s *Session) Run(ctx context.Context) error {
	s.cat.Lister.Refresh(ctx)

	for {
		fmt.Fprint(s.page.out, "\ncatalog> ")
		line, err := s.page.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "r", "refresh", "list":
			s.cat.Lister.Refresh(ctx)
		case "a", "add":
			s.promptCreate(ctx)
		case "e", "edit":
			s.withID(ctx, fields, ui.ActionEdit)
		case "d", "delete":
			s.withID(ctx, fields, ui.ActionDelete)
		case "h", "help":
			fmt.Fprintln(s.page.out, helpText)
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.page.out, "unknown command %q, try h\n", fields[0])
		}
	}
}

func (s *Session) withID(ctx context.Context, fields []string, action ui.CardAction) {
	if len(fields) < 2 {
		fmt.Fprintf(s.page.out, "usage: %s <id>\n", fields[0])
		return
	}
	id := catalog.ID(fields[1])
	if err := s.cat.HandleCardAction(ctx, action, id); err != nil {
		fmt.Fprintln(s.page.out, err)
		return
	}
	if action == ui.ActionEdit && s.page.Modal.Visible() {
		s.promptEdit(ctx)
	}
}

func (s *Session) promptCreate(ctx context.Context) {
	s.page.Form.Set(ui.FormValues{
		Name:        s.prompt("Name"),
		Price:       s.prompt("Price"),
		Description: s.prompt("Description"),
		Stock:       s.prompt("Stock quantity"),
	})
	s.cat.Creator.Submit(ctx)
}

func (s *Session) promptEdit(ctx context.Context) {
	f := s.page.Modal.Fields()
	f.Name = s.promptDefault("Name", f.Name)
	f.Price = s.promptDefault("Price", f.Price)
	f.Description = s.promptDefault("Description", f.Description)
	f.Stock = s.promptDefault("Stock quantity", f.Stock)

	if !s.page.Dialogs.Confirm("Save changes?") {
		s.cat.Editor.Close()
		return
	}
	s.page.Modal.Populate(f)
	s.cat.Editor.Submit(ctx)
}

func (s *Session) prompt(label string) string {
	fmt.Fprintf(s.page.out, "%s: ", label)
	line, _ := s.page.readLine()
	return line
}

func (s *Session) promptDefault(label, current string) string {
	fmt.Fprintf(s.page.out, "%s [%s]: ", label, current)
	line, _ := s.page.readLine()
	if strings.TrimSpace(line) == "" {
		return current
	}
	return line
}
