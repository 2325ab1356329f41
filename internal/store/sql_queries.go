// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/paulobof/sistema-bancario/models"
)

const (
	createClient = `INSERT INTO clients (cpf, name, birth_date, address)
    VALUES (?, ?, ?, ?)
    RETURNING cpf, name, birth_date, address, created_at;`

	findClientByCPF = `SELECT cpf, name, birth_date, address, created_at
    FROM clients
    WHERE cpf = ?;`

	deleteClient = `DELETE FROM clients
    WHERE cpf = ?;`

	createAccount = `INSERT INTO accounts (agency, client_cpf, balance)
    VALUES (?, ?, 0);`

	linkAccountToClient = `INSERT INTO client_accounts (client_cpf, account_number, position)
    SELECT ?, ?, COALESCE(MAX(position) + 1, 0) FROM client_accounts WHERE client_cpf = ?;`

	getAccountByNumber = `SELECT a.number, a.agency, a.client_cpf, c.name, a.balance, a.created_at
    FROM accounts a
    JOIN clients c ON c.cpf = a.client_cpf
    WHERE a.number = ?;`

	updateAccountBalance = `UPDATE accounts
    SET balance = ?
    WHERE number = ?;`

	appendTransaction = `INSERT INTO transactions (id, account_number, kind, amount, created_at)
    VALUES (?, ?, ?, ?, ?);`

	listAccountTransactions = `SELECT id, account_number, kind, amount, created_at
    FROM transactions
    WHERE account_number = ?
    ORDER BY created_at, rowid;`

	unlinkAccountFromClient = `DELETE FROM client_accounts
    WHERE account_number = ?;`

	deleteAccountTransactions = `DELETE FROM transactions
    WHERE account_number = ?;`

	deleteAccount = `DELETE FROM accounts
    WHERE number = ?;`
)

// buildListClientsQuery builds the SELECT that lists every client together
// with its current account count, taken from the client_accounts index.
func buildListClientsQuery(_ context.Context) (string, []any, error) {
	return sq.
		Select(
			"c.cpf",
			"c.name",
			"c.birth_date",
			"c.address",
			"c.created_at",
			"COUNT(ca.account_number) AS account_count",
		).
		From("clients c").
		LeftJoin("client_accounts ca ON ca.client_cpf = c.cpf").
		GroupBy("c.cpf").
		OrderBy("c.created_at", "c.cpf").
		ToSql()
}

// buildListAccountsQuery builds the SELECT that lists accounts with the
// owner's name denormalized in. When cpf is non-empty the result is narrowed
// to that client's accounts via the client_accounts index, ordered by the
// position in which the accounts were linked to the client.
func buildListAccountsQuery(_ context.Context, cpf string) (string, []any, error) {
	builder := sq.
		Select(
			"a.number",
			"a.agency",
			"a.client_cpf",
			"c.name",
			"a.balance",
			"a.created_at",
		).
		From("accounts a").
		Join("clients c ON c.cpf = a.client_cpf")

	if cpf != "" {
		builder = builder.
			Join("client_accounts ca ON ca.account_number = a.number").
			Where(sq.Eq{"ca.client_cpf": cpf}).
			OrderBy("ca.position", "ca.account_number")
	} else {
		builder = builder.OrderBy("a.number")
	}

	return builder.ToSql()
}

// buildCountWithdrawalsQuery builds the SELECT that counts withdrawal entries
// of one account. A non-nil since narrows the count to entries created at or
// after that instant, which is how the daily reset policy is implemented.
func buildCountWithdrawalsQuery(_ context.Context, number int64, since *time.Time) (string, []any, error) {
	builder := sq.
		Select("COUNT(*)").
		From("transactions").
		Where(sq.Eq{"account_number": number}).
		Where(sq.Eq{"kind": string(models.OperationWithdrawal)})

	if since != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *since})
	}

	return builder.ToSql()
}
