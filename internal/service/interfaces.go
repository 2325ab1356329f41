// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package service

import (
	"context"

	"github.com/paulobof/sistema-bancario/models"
)

// ClientService manages the client registry.
type ClientService interface {
	// CreateClient validates and registers a new client. Returns
	// [ErrClientAlreadyExists] when the CPF is already registered.
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)

	// FindClient looks a client up by CPF.
	FindClient(ctx context.Context, cpf string) (models.Client, error)

	// ListClients returns every registered client with its account count.
	ListClients(ctx context.Context) ([]models.ClientSummary, error)

	// RemoveClient removes a client that owns no accounts. The removal must
	// be explicitly confirmed; confirmed=false cancels the operation and
	// leaves the registry unchanged.
	RemoveClient(ctx context.Context, cpf string, confirmed bool) error
}

// AccountService manages accounts, their balances and their operation logs.
type AccountService interface {
	// CreateAccount opens a new account for an existing client. The account
	// number is assigned sequentially and never reused.
	CreateAccount(ctx context.Context, cpf string) (models.Account, error)

	// Deposit credits amount (centavos) to the account and appends a
	// deposit entry to its log. Fails with [ErrInvalidAmount] for
	// non-positive amounts; a failed deposit changes nothing.
	Deposit(ctx context.Context, number int64, amount int64) (models.Account, error)

	// Withdraw debits amount (centavos) from the account and appends a
	// withdrawal entry to its log. The business rules are checked in strict
	// order: withdrawal count limit, balance, per-withdrawal cap, amount
	// positivity. A failed withdrawal changes nothing.
	Withdraw(ctx context.Context, number int64, amount int64) (models.Account, error)

	// ListAccounts returns every open account.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// ListClientAccounts returns the accounts owned by one client, in the
	// order they were opened.
	ListClientAccounts(ctx context.Context, cpf string) ([]models.Account, error)

	// Statement returns the account and its full operation log in append
	// order.
	Statement(ctx context.Context, number int64) (models.Account, []models.Transaction, error)

	// RemoveAccount removes an account whose balance is exactly zero. The
	// removal must be explicitly confirmed; confirmed=false cancels the
	// operation and leaves everything unchanged.
	RemoveAccount(ctx context.Context, number int64, confirmed bool) error
}

// AppInfoService exposes build metadata to the presentation layer.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
