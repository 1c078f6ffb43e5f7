// Package wire provides dependency injection for the stockroom application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/stockroom/internal/adapters/cli"
	"github.com/example/stockroom/internal/adapters/csvfile"
	"github.com/example/stockroom/internal/adapters/sqlite"
	"github.com/example/stockroom/internal/app"
	"github.com/example/stockroom/internal/config"
	"github.com/example/stockroom/internal/ports/primary"
)

// Options are set by the root command before any service is used.
type Options struct {
	Dir    string // working directory holding .stockroom/
	Config *config.Config
	Logger *zap.Logger
}

var (
	opts Options

	inventoryService primary.InventoryService
	checkoutService  primary.CheckoutService
	ledgerService    primary.LedgerService
	once             sync.Once
)

// Configure sets the options used to build services.
// Must be called before the first service accessor.
func Configure(o Options) {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	opts = o
}

// Config returns the configuration services are built from.
func Config() *config.Config {
	if opts.Config == nil {
		return config.Default()
	}
	return opts.Config
}

// InventoryPath returns the resolved inventory file location.
func InventoryPath() string {
	path := Config().InventoryFile
	if filepath.IsAbs(path) || opts.Dir == "" {
		return path
	}
	return filepath.Join(opts.Dir, path)
}

// InventoryService returns the singleton InventoryService instance.
func InventoryService() primary.InventoryService {
	once.Do(initServices)
	return inventoryService
}

// CheckoutService returns the singleton CheckoutService instance.
func CheckoutService() primary.CheckoutService {
	once.Do(initServices)
	return checkoutService
}

// LedgerService returns the singleton LedgerService instance.
func LedgerService() primary.LedgerService {
	once.Do(initServices)
	return ledgerService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if opts.Config == nil || opts.Logger == nil {
		Configure(opts)
	}
	logger := opts.Logger

	// Create repository adapters (secondary ports)
	inventoryRepo := csvfile.NewInventoryRepository(InventoryPath())

	// The ledger is best effort: without it the inventory still works.
	// It is opened on first use so read-only commands never create it.
	ledgerPath := Config().ResolveLedgerPath(opts.Dir)
	ledgerRepo := newLazyLedger(ledgerPath, logger)
	ledgerWriter := sqlite.NewLedgerWriterAdapter(ledgerRepo)

	// Create services (primary ports implementation)
	inv := app.NewInventoryService(inventoryRepo, ledgerWriter, logger.Named("inventory"))
	inventoryService = inv
	checkoutService = app.NewCheckoutService(inv, logger.Named("checkout"))
	ledgerService = app.NewLedgerService(ledgerRepo)

	logger.Debug("services initialized",
		zap.String("inventory", inventoryRepo.Path()),
		zap.String("ledger", ledgerPath),
	)
}

// InventoryAdapter returns a new InventoryAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func InventoryAdapter() *cliadapter.InventoryAdapter {
	return InventoryAdapterWithOutput(os.Stdout)
}

// InventoryAdapterWithOutput returns a new InventoryAdapter writing to the given output.
func InventoryAdapterWithOutput(out io.Writer) *cliadapter.InventoryAdapter {
	return cliadapter.NewInventoryAdapter(InventoryService(), out)
}

// CheckoutAdapter returns a new CheckoutAdapter on stdin and stdout.
func CheckoutAdapter() *cliadapter.CheckoutAdapter {
	return cliadapter.NewCheckoutAdapter(CheckoutService(), os.Stdin, os.Stdout)
}

// LedgerAdapter returns a new LedgerAdapter writing to stdout.
func LedgerAdapter() *cliadapter.LedgerAdapter {
	return cliadapter.NewLedgerAdapter(LedgerService(), os.Stdout)
}
