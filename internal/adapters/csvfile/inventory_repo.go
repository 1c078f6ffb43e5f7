// Package csvfile contains the flat-file implementation of the inventory repository.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ports/secondary"
)

// defaultPerm is the mode of a freshly created inventory file.
const defaultPerm os.FileMode = 0644

// InventoryRepository implements secondary.InventoryRepository on a CSV file.
type InventoryRepository struct {
	path string
}

// NewInventoryRepository creates a repository backed by the file at path.
func NewInventoryRepository(path string) *InventoryRepository {
	return &InventoryRepository{path: path}
}

// Path returns the inventory file location.
func (r *InventoryRepository) Path() string {
	return r.path
}

// Create writes a new inventory file holding only the header.
func (r *InventoryRepository) Create(ctx context.Context, header inventory.Header) error {
	if _, err := os.Stat(r.path); err == nil {
		return fmt.Errorf("%w: %s already exists", inventory.ErrStorage, r.path)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create directory: %w", inventory.ErrStorage, err)
		}
	}

	return r.write(&secondary.InventorySnapshot{Header: header}, defaultPerm)
}

// Load reads the header and every record in file order.
func (r *InventoryRepository) Load(ctx context.Context) (*secondary.InventorySnapshot, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open inventory: %w", inventory.ErrStorage, err)
	}
	defer f.Close()

	// FieldsPerRecord 0 pins every row to the header's column count.
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header", inventory.ErrStorage, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", inventory.ErrStorage, err)
	}
	if len(header) != inventory.NumColumns {
		return nil, fmt.Errorf("%w: header has %d columns, expected %d", inventory.ErrStorage, len(header), inventory.NumColumns)
	}

	snapshot := &secondary.InventorySnapshot{Header: inventory.Header(header)}
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed inventory: %w", inventory.ErrStorage, err)
		}

		line, _ := reader.FieldPos(0)
		record, err := inventory.ParseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		snapshot.Records = append(snapshot.Records, record)
	}

	return snapshot, nil
}

// Persist replaces the file content with the snapshot.
// The rows are written to a temporary file next to the inventory and renamed over it.
func (r *InventoryRepository) Persist(ctx context.Context, snapshot *secondary.InventorySnapshot) error {
	if len(snapshot.Header) != inventory.NumColumns {
		return fmt.Errorf("%w: header has %d columns, expected %d", inventory.ErrStorage, len(snapshot.Header), inventory.NumColumns)
	}

	// The replacement keeps whatever mode the operator gave the existing file.
	perm := defaultPerm
	if info, err := os.Stat(r.path); err == nil {
		perm = info.Mode().Perm()
	}
	return r.write(snapshot, perm)
}

func (r *InventoryRepository) write(snapshot *secondary.InventorySnapshot, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", inventory.ErrStorage, err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(snapshot.Header); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to write header: %w", inventory.ErrStorage, err)
	}
	for _, record := range snapshot.Records {
		if err := writer.Write(record.Fields()); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: failed to write record: %w", inventory.ErrStorage, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to flush inventory: %w", inventory.ErrStorage, err)
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to set permissions: %w", inventory.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %w", inventory.ErrStorage, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: failed to replace inventory: %w", inventory.ErrStorage, err)
	}

	return nil
}

// Ensure InventoryRepository implements the interface.
var _ secondary.InventoryRepository = (*InventoryRepository)(nil)
