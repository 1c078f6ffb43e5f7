package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/stockroom/internal/ports/primary"
)

// LedgerAdapter prints the stock ledger.
type LedgerAdapter struct {
	service primary.LedgerService
	out     io.Writer
}

// NewLedgerAdapter creates a new LedgerAdapter with the given service.
func NewLedgerAdapter(service primary.LedgerService, out io.Writer) *LedgerAdapter {
	return &LedgerAdapter{
		service: service,
		out:     out,
	}
}

// List prints ledger entries, newest first.
func (a *LedgerAdapter) List(ctx context.Context, filters primary.MovementFilters) ([]*primary.Movement, error) {
	movements, err := a.service.ListMovements(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(movements) == 0 {
		fmt.Fprintln(a.out, "No stock movements found.")
		return movements, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tACTOR\tACTION\tITEM\tCHANGE")
	fmt.Fprintln(w, "--\t----\t-----\t------\t----\t------")

	for _, m := range movements {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s %s\t%s\n",
			m.ID,
			m.CreatedAt,
			orDash(m.Actor),
			m.Action,
			m.Colour,
			m.Name,
			describeChange(m),
		)
	}

	w.Flush()
	return movements, nil
}

func describeChange(m *primary.Movement) string {
	if m.FieldName == "" {
		return "-"
	}
	return fmt.Sprintf("%s: %s → %s", m.FieldName, m.OldValue, m.NewValue)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
