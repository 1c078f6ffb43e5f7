// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/stockroom/internal/ports/secondary"
)

// LedgerRepository implements secondary.LedgerRepository with SQLite.
type LedgerRepository struct {
	db *sql.DB
}

// NewLedgerRepository creates a new SQLite ledger repository.
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Create persists a new ledger entry.
func (r *LedgerRepository) Create(ctx context.Context, m *secondary.MovementRecord) error {
	var checkoutID, fieldName, oldValue, newValue sql.NullString
	if m.CheckoutID != "" {
		checkoutID = sql.NullString{String: m.CheckoutID, Valid: true}
	}
	if m.FieldName != "" {
		fieldName = sql.NullString{String: m.FieldName, Valid: true}
	}
	if m.OldValue != "" {
		oldValue = sql.NullString{String: m.OldValue, Valid: true}
	}
	if m.NewValue != "" {
		newValue = sql.NullString{String: m.NewValue, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stock_movements
			(id, checkout_id, actor, action, category, name, colour, field_name, old_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, checkoutID, m.Actor, m.Action, m.Category, m.Name, m.Colour, fieldName, oldValue, newValue,
	)
	if err != nil {
		return fmt.Errorf("failed to create movement: %w", err)
	}

	return nil
}

// List retrieves ledger entries matching the filters, newest first.
func (r *LedgerRepository) List(ctx context.Context, filters secondary.MovementFilters) ([]*secondary.MovementRecord, error) {
	query := `SELECT id, checkout_id, actor, action, category, name, colour,
		field_name, old_value, new_value, created_at FROM stock_movements`

	var (
		where []string
		args  []any
	)
	if filters.Name != "" {
		where = append(where, "name = ?")
		args = append(args, filters.Name)
	}
	if filters.Colour != "" {
		where = append(where, "colour = ?")
		args = append(args, filters.Colour)
	}
	if filters.Action != "" {
		where = append(where, "action = ?")
		args = append(args, filters.Action)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY CAST(SUBSTR(id, 5) AS INTEGER) DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer rows.Close()

	var movements []*secondary.MovementRecord
	for rows.Next() {
		var (
			checkoutID sql.NullString
			fieldName  sql.NullString
			oldValue   sql.NullString
			newValue   sql.NullString
			createdAt  time.Time
		)

		record := &secondary.MovementRecord{}
		err := rows.Scan(&record.ID, &checkoutID, &record.Actor, &record.Action,
			&record.Category, &record.Name, &record.Colour,
			&fieldName, &oldValue, &newValue, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}

		record.CheckoutID = checkoutID.String
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		movements = append(movements, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	return movements, nil
}

// GetNextID returns the next available movement ID.
func (r *LedgerRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM stock_movements",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next movement ID: %w", err)
	}

	return fmt.Sprintf("MOV-%03d", maxID+1), nil
}

// Ensure LedgerRepository implements the interface.
var _ secondary.LedgerRepository = (*LedgerRepository)(nil)
