package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/stockroom/internal/ports/primary"
)

// mockLedgerService implements primary.LedgerService for testing
type mockLedgerService struct {
	movements   []*primary.Movement
	lastFilters primary.MovementFilters
}

func (m *mockLedgerService) ListMovements(ctx context.Context, filters primary.MovementFilters) ([]*primary.Movement, error) {
	m.lastFilters = filters
	return m.movements, nil
}

func TestLedgerAdapter_List_WithResults(t *testing.T) {
	mock := &mockLedgerService{
		movements: []*primary.Movement{
			{ID: "MOV-002", Action: "price", Name: "pants", Colour: "grey", FieldName: "price", OldValue: "60", NewValue: "70", Actor: "till", CreatedAt: "2026-01-02T10:00:00Z"},
			{ID: "MOV-001", Action: "add", Name: "pants", Colour: "grey", CreatedAt: "2026-01-01T10:00:00Z"},
		},
	}
	var buf bytes.Buffer
	adapter := NewLedgerAdapter(mock, &buf)

	movements, err := adapter.List(context.Background(), primary.MovementFilters{Name: "pants"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(movements) != 2 {
		t.Errorf("expected 2 movements, got %d", len(movements))
	}
	if mock.lastFilters.Name != "pants" {
		t.Errorf("expected name filter to be passed through, got %+v", mock.lastFilters)
	}

	output := buf.String()
	if !strings.Contains(output, "MOV-002") || !strings.Contains(output, "price: 60 → 70") {
		t.Errorf("unexpected output %q", output)
	}
	if !strings.Contains(output, "grey pants") {
		t.Errorf("expected item label in output, got %q", output)
	}
}

func TestLedgerAdapter_List_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewLedgerAdapter(&mockLedgerService{}, &buf)

	if _, err := adapter.List(context.Background(), primary.MovementFilters{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No stock movements found.") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
