package store

import (
	"context"
	"fmt"

	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	ClientRepository  ClientRepository
	AccountRepository AccountRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the DSN specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist (in-memory DSNs
//     skip this step).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh client and
//     account repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ClientRepository:  NewClientRepository(db, logger),
		AccountRepository: NewAccountRepository(db, logger),
	}, nil
}
