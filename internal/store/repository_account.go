// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/models"
)

// accountRepository is the SQLite-backed implementation of
// [AccountRepository]. It executes all account operations against the
// "accounts", "client_accounts" and "transactions" tables using the embedded
// [*DB] connection.
//
// Account numbers come from the accounts table's AUTOINCREMENT primary key,
// which SQLite guarantees to be strictly increasing and never reused even
// after rows are deleted.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccount opens a new account for account.ClientCPF inside a single
// database transaction:
//  1. INSERT into accounts, letting AUTOINCREMENT assign the next number.
//  2. INSERT the ownership row into client_accounts, appended at the end of
//     the client's account list.
//  3. INSERT the opening entry (initial) into transactions.
//
// The three writes commit together or not at all, so an account can never
// exist without its index entry and opening log entry.
//
// Returns the created account with its assigned number, or an error when the
// transaction cannot be completed.
func (a *accountRepository) CreateAccount(ctx context.Context, account models.Account, initial models.Transaction) (models.Account, error) {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("cpf", account.ClientCPF).
			Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, createAccount, account.Agency, account.ClientCPF)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("cpf", account.ClientCPF).
			Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	number, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("cpf", account.ClientCPF).
			Msg("failed to get assigned account number")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	account.Number = number
	account.Balance = 0

	if _, err := tx.ExecContext(ctx, linkAccountToClient, account.ClientCPF, number, account.ClientCPF); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Int64("number", number).
			Msg("failed to insert ownership index entry")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, appendTransaction, initial.ID, number, initial.Kind, initial.Amount, initial.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Int64("number", number).
			Msg("failed to insert opening log entry")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Int64("number", number).
			Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return account, nil
}

// GetAccount retrieves one account by number, with the owner's name joined in.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrAccountNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (a *accountRepository) GetAccount(ctx context.Context, number int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	row := a.DB.QueryRowContext(ctx, getAccountByNumber, number)

	if err := row.Scan(&found.Number, &found.Agency, &found.ClientCPF, &found.ClientName, &found.Balance, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).
			Str("func", "accountRepository.GetAccount").
			Int64("number", number).
			Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListAccounts returns every open account ordered by number.
func (a *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return a.listAccounts(ctx, "")
}

// ListAccountsByClient returns the accounts owned by the client with the
// given CPF, in the order they were opened. Returns an empty slice when the
// client owns no accounts.
func (a *accountRepository) ListAccountsByClient(ctx context.Context, cpf string) ([]models.Account, error) {
	return a.listAccounts(ctx, cpf)
}

func (a *accountRepository) listAccounts(ctx context.Context, cpf string) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(ctx, cpf)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.listAccounts").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.listAccounts").
			Str("cpf", cpf).
			Msg("failed to execute query for listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 16)

	for rows.Next() {
		var item models.Account

		scanErr := rows.Scan(
			&item.Number,
			&item.Agency,
			&item.ClientCPF,
			&item.ClientName,
			&item.Balance,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "accountRepository.listAccounts").
				Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		accounts = append(accounts, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "accountRepository.listAccounts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

// AppendOperation records one successful deposit or withdrawal inside a
// single database transaction: the account balance is set to newBalance and
// the corresponding entry is appended to the operation log. Balance and log
// always change together.
//
// Error handling:
//   - Balance UPDATE affecting zero rows → [ErrAccountNotFound]; nothing is
//     committed.
func (a *accountRepository) AppendOperation(ctx context.Context, operation models.Transaction, newBalance int64) error {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.AppendOperation").
			Int64("number", operation.AccountNumber).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateAccountBalance, newBalance, operation.AccountNumber)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.AppendOperation").
			Int64("number", operation.AccountNumber).
			Msg("failed to update account balance")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.AppendOperation").
			Int64("number", operation.AccountNumber).
			Msg("failed to get rows affected after balance update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	if _, err := tx.ExecContext(ctx, appendTransaction, operation.ID, operation.AccountNumber, operation.Kind, operation.Amount, operation.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "accountRepository.AppendOperation").
			Int64("number", operation.AccountNumber).
			Str("kind", string(operation.Kind)).
			Msg("failed to append log entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "accountRepository.AppendOperation").
			Int64("number", operation.AccountNumber).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// CountWithdrawals counts withdrawal entries of one account. A non-nil since
// restricts the count to entries created at or after that instant.
func (a *accountRepository) CountWithdrawals(ctx context.Context, number int64, since *time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountWithdrawalsQuery(ctx, number, since)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CountWithdrawals").
			Int64("number", number).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	row := a.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CountWithdrawals").
			Int64("number", number).
			Msg("failed to scan withdrawal count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// ListTransactions returns the full operation log of one account in append
// order, oldest entry first. Returns an empty slice for an unknown account;
// existence checks are a service-layer concern.
func (a *accountRepository) ListTransactions(ctx context.Context, number int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	rows, err := a.DB.QueryContext(ctx, listAccountTransactions, number)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.ListTransactions").
			Int64("number", number).
			Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Transaction, 0, 16)

	for rows.Next() {
		var item models.Transaction

		scanErr := rows.Scan(
			&item.ID,
			&item.AccountNumber,
			&item.Kind,
			&item.Amount,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "accountRepository.ListTransactions").
				Int64("number", number).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "accountRepository.ListTransactions").
			Int64("number", number).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// DeleteAccount removes one account inside a single database transaction:
// the operation log, the ownership index entry and the account row are
// deleted together. The freed number is never reassigned because the
// accounts table uses AUTOINCREMENT.
//
// Balance checks (only zero-balance accounts may be removed) are a
// service-layer concern.
//
// Error handling:
//   - Account DELETE affecting zero rows → [ErrAccountNotFound]; nothing is
//     committed.
func (a *accountRepository) DeleteAccount(ctx context.Context, number int64) error {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Int64("number", number).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAccountTransactions, number); err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Int64("number", number).
			Msg("failed to delete operation log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, unlinkAccountFromClient, number); err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Int64("number", number).
			Msg("failed to delete ownership index entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteAccount, number)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Int64("number", number).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Int64("number", number).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Int64("number", number).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
