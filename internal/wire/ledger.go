package wire

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/example/stockroom/internal/adapters/sqlite"
	"github.com/example/stockroom/internal/db"
	"github.com/example/stockroom/internal/ports/secondary"
)

// lazyLedger opens the ledger database on the first call that needs it.
// A failed open is remembered and returned from every later call.
type lazyLedger struct {
	path   string
	logger *zap.Logger

	once sync.Once
	repo *sqlite.LedgerRepository
	err  error
}

func newLazyLedger(path string, logger *zap.Logger) *lazyLedger {
	return &lazyLedger{path: path, logger: logger}
}

func (l *lazyLedger) open() (*sqlite.LedgerRepository, error) {
	l.once.Do(func() {
		database, err := db.Open(l.path)
		if err != nil {
			l.logger.Warn("stock ledger unavailable", zap.String("path", l.path), zap.Error(err))
			l.err = fmt.Errorf("stock ledger unavailable: %w", err)
			return
		}
		l.repo = sqlite.NewLedgerRepository(database)
	})
	return l.repo, l.err
}

func (l *lazyLedger) Create(ctx context.Context, m *secondary.MovementRecord) error {
	repo, err := l.open()
	if err != nil {
		return err
	}
	return repo.Create(ctx, m)
}

func (l *lazyLedger) List(ctx context.Context, f secondary.MovementFilters) ([]*secondary.MovementRecord, error) {
	repo, err := l.open()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, f)
}

func (l *lazyLedger) GetNextID(ctx context.Context) (string, error) {
	repo, err := l.open()
	if err != nil {
		return "", err
	}
	return repo.GetNextID(ctx)
}

var _ secondary.LedgerRepository = (*lazyLedger)(nil)
