package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/paulobof/sistema-bancario/models"
)

// ClientRepository persists bank clients keyed by CPF.
type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	FindClient(ctx context.Context, cpf string) (models.Client, error)
	ListClients(ctx context.Context) ([]models.ClientSummary, error)
	DeleteClient(ctx context.Context, cpf string) error
}

// AccountRepository persists checking accounts, their ownership index and
// their operation log. Mutations that touch more than one table run inside a
// single database transaction so that an account, its index entry and its log
// always change together.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account, initial models.Transaction) (models.Account, error)
	GetAccount(ctx context.Context, number int64) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListAccountsByClient(ctx context.Context, cpf string) ([]models.Account, error)
	AppendOperation(ctx context.Context, operation models.Transaction, newBalance int64) error
	CountWithdrawals(ctx context.Context, number int64, since *time.Time) (int64, error)
	ListTransactions(ctx context.Context, number int64) ([]models.Transaction, error)
	DeleteAccount(ctx context.Context, number int64) error
}
