// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/models"
)

// clientRepository is the SQLite-backed implementation of [ClientRepository].
// It handles client registration, lookup and removal against the "clients"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClient persists a new client record and returns the fully populated
// [models.Client] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createClient] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly registered client.
//
// Error handling:
//   - SQLite UNIQUE/PRIMARY KEY violation on cpf → [ErrClientAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createClient, client.CPF, client.Name, client.BirthDate, client.Address)

	// scan saved client from db
	if err := row.Scan(&client.CPF, &client.Name, &client.BirthDate, &client.Address, &client.CreatedAt); err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Str("cpf", client.CPF).Msg("error: inserting client")

		if sqliteConstraintError(err) {
			return models.Client{}, ErrClientAlreadyExists
		}
		return models.Client{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return client, nil
}

// FindClient retrieves the client record whose CPF matches the provided key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrClientNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *clientRepository) FindClient(ctx context.Context, cpf string) (models.Client, error) {
	log := logger.FromContext(ctx)

	var found models.Client
	row := r.db.QueryRowContext(ctx, findClientByCPF, cpf)

	if err := row.Scan(&found.CPF, &found.Name, &found.BirthDate, &found.Address, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*clientRepository.FindClient").Str("cpf", cpf).Msg("error: scanning client row")
		return models.Client{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListClients returns every registered client annotated with its current
// account count, in registration order. Returns an empty slice when the
// registry is empty.
func (r *clientRepository) ListClients(ctx context.Context) ([]models.ClientSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListClientsQuery(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "*clientRepository.ListClients").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*clientRepository.ListClients").
			Msg("failed to execute query for listing clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.ClientSummary, 0, 16)

	for rows.Next() {
		var item models.ClientSummary

		scanErr := rows.Scan(
			&item.CPF,
			&item.Name,
			&item.BirthDate,
			&item.Address,
			&item.CreatedAt,
			&item.AccountCount,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*clientRepository.ListClients").
				Msg("failed to scan client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		clients = append(clients, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*clientRepository.ListClients").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return clients, nil
}

// DeleteClient removes the client record with the given CPF.
//
// Referential checks (the client must not own accounts) are a service-layer
// concern; this method only deletes the row.
//
// Error handling:
//   - Zero rows affected → [ErrClientNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *clientRepository) DeleteClient(ctx context.Context, cpf string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteClient, cpf)
	if err != nil {
		log.Err(err).
			Str("func", "*clientRepository.DeleteClient").
			Str("cpf", cpf).
			Msg("failed to execute delete for client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*clientRepository.DeleteClient").
			Str("cpf", cpf).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}
