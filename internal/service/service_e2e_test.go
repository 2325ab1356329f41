package service

import (
	"context"
	"testing"

	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/store"
	"github.com/paulobof/sistema-bancario/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLedger wires the full service stack over a real in-memory SQLite
// database, the same path production takes with the default DSN.
func newLedger(t *testing.T) *Services {
	t.Helper()

	log := logger.NewLogger("test")
	storages, err := store.NewStorages(config.Storage{DB: config.DB{DSN: ":memory:"}}, log)
	require.NoError(t, err)

	cfg := &config.StructuredConfig{
		App: config.App{Version: "test"},
		Limits: config.Limits{
			MaxWithdrawals:  3,
			WithdrawalCap:   50000,
			Agency:          "0001",
			WithdrawalReset: config.ResetDaily,
		},
	}

	services, err := NewServices(storages, cfg, log)
	require.NoError(t, err)

	return services
}

func registerClient(t *testing.T, services *Services, client models.Client) models.Client {
	t.Helper()
	created, err := services.ClientService.CreateClient(context.Background(), client)
	require.NoError(t, err)
	return created
}

// TestLedger_FullLifecycle walks one client through the whole flow:
// registration, account opening, deposit, withdrawals, statement and the
// removal rules.
func TestLedger_FullLifecycle(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	client := registerClient(t, services, models.Client{
		CPF:       "11122233344",
		Name:      "Pedro Souza Lima",
		BirthDate: "08/12/1978",
		Address:   "Praça da Liberdade - 789 - Centro - Belo Horizonte/MG",
	})

	// first account of the ledger gets number 1
	account, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.Number)
	assert.Equal(t, "0001", account.Agency)
	assert.Zero(t, account.Balance)

	// opening entry is already on the log
	_, entries, err := services.AccountService.Statement(ctx, account.Number)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OperationInitial, entries[0].Kind)

	// deposit R$ 500,00 → 2 entries
	account, err = services.AccountService.Deposit(ctx, account.Number, 50000)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), account.Balance)

	_, entries, err = services.AccountService.Statement(ctx, account.Number)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.OperationDeposit, entries[1].Kind)

	// withdraw the full R$ 500,00 → 3 entries, balance zero
	account, err = services.AccountService.Withdraw(ctx, account.Number, 50000)
	require.NoError(t, err)
	assert.Zero(t, account.Balance)

	_, entries, err = services.AccountService.Statement(ctx, account.Number)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.OperationWithdrawal, entries[2].Kind)

	// withdrawing one more centavo fails and appends nothing
	_, err = services.AccountService.Withdraw(ctx, account.Number, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, entries, err = services.AccountService.Statement(ctx, account.Number)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// client removal blocked while the account exists, and the error
	// carries the account count
	err = services.ClientService.RemoveClient(ctx, client.CPF, true)
	assert.ErrorIs(t, err, ErrClientHasAccounts)
	assert.Contains(t, err.Error(), "1 conta(s)")

	// zero balance: account can go, then the client
	require.NoError(t, services.AccountService.RemoveAccount(ctx, account.Number, true))
	require.NoError(t, services.ClientService.RemoveClient(ctx, client.CPF, true))

	clients, err := services.ClientService.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestLedger_DuplicateCPFRejected(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	client := models.Client{
		CPF:       "12345678901",
		Name:      "João Silva Santos",
		BirthDate: "15/03/1985",
		Address:   "Rua das Flores - 123 - Centro - São Paulo/SP",
	}

	registerClient(t, services, client)

	_, err := services.ClientService.CreateClient(ctx, client)
	assert.ErrorIs(t, err, ErrClientAlreadyExists)

	clients, listErr := services.ClientService.ListClients(ctx)
	require.NoError(t, listErr)
	assert.Len(t, clients, 1)
}

func TestLedger_AccountNumbersNeverReused(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	client := registerClient(t, services, models.Client{
		CPF:       "98765432109",
		Name:      "Maria Oliveira Costa",
		BirthDate: "22/07/1990",
		Address:   "Avenida Brasil - 456 - Copacabana - Rio de Janeiro/RJ",
	})

	first, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)
	require.Equal(t, int64(1), first.Number)

	require.NoError(t, services.AccountService.RemoveAccount(ctx, first.Number, true))

	// the freed number 1 must not come back
	second, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Number)
}

func TestLedger_ClientAccountOrderSurvivesRemoval(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	client := registerClient(t, services, models.Client{
		CPF:       "12345678901",
		Name:      "João Silva Santos",
		BirthDate: "15/03/1985",
		Address:   "Rua das Flores - 123 - Centro - São Paulo/SP",
	})

	first, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)
	second, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)

	require.NoError(t, services.AccountService.RemoveAccount(ctx, first.Number, true))

	// an account opened after a removal must land after the survivors
	third, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)

	owned, err := services.AccountService.ListClientAccounts(ctx, client.CPF)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, second.Number, owned[0].Number)
	assert.Equal(t, third.Number, owned[1].Number)
}

func TestLedger_WithdrawalCountLimit(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	client := registerClient(t, services, models.Client{
		CPF:       "55566677788",
		Name:      "Ana Carolina Ferreira",
		BirthDate: "03/05/1992",
		Address:   "Rua das Palmeiras - 321 - Jardins - Brasília/DF",
	})

	account, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)

	_, err = services.AccountService.Deposit(ctx, account.Number, 100000)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = services.AccountService.Withdraw(ctx, account.Number, 10000)
		require.NoError(t, err)
	}

	// fourth withdrawal of the day is refused regardless of amount
	_, err = services.AccountService.Withdraw(ctx, account.Number, 100)
	assert.ErrorIs(t, err, ErrWithdrawalLimitReached)

	account, err = services.AccountService.Deposit(ctx, account.Number, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(70001), account.Balance)
}

func TestLedger_RemoveAccountRequiresZeroBalance(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	client := registerClient(t, services, models.Client{
		CPF:       "99988877766",
		Name:      "Carlos Eduardo Mendes",
		BirthDate: "10/11/1980",
		Address:   "Alameda dos Anjos - 654 - Boa Viagem - Recife/PE",
	})

	account, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)

	_, err = services.AccountService.Deposit(ctx, account.Number, 1)
	require.NoError(t, err)

	err = services.AccountService.RemoveAccount(ctx, account.Number, true)
	assert.ErrorIs(t, err, ErrNonZeroBalance)
	assert.Contains(t, err.Error(), "saldo R$ 0,01")

	// back to zero: removal allowed, but only when confirmed
	_, err = services.AccountService.Withdraw(ctx, account.Number, 1)
	require.NoError(t, err)

	err = services.AccountService.RemoveAccount(ctx, account.Number, false)
	assert.ErrorIs(t, err, ErrOperationCancelled)

	_, _, err = services.AccountService.Statement(ctx, account.Number)
	require.NoError(t, err, "cancelled removal must leave the account in place")

	require.NoError(t, services.AccountService.RemoveAccount(ctx, account.Number, true))

	_, _, err = services.AccountService.Statement(ctx, account.Number)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLedger_StatementRendering(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	client := registerClient(t, services, models.Client{
		CPF:       "11122233344",
		Name:      "Pedro Souza Lima",
		BirthDate: "08/12/1978",
		Address:   "Praça da Liberdade - 789 - Centro - Belo Horizonte/MG",
	})

	account, err := services.AccountService.CreateAccount(ctx, client.CPF)
	require.NoError(t, err)

	_, err = services.AccountService.Deposit(ctx, account.Number, 200000)
	require.NoError(t, err)
	_, err = services.AccountService.Withdraw(ctx, account.Number, 50000)
	require.NoError(t, err)

	account, entries, err := services.AccountService.Statement(ctx, account.Number)
	require.NoError(t, err)

	out := RenderStatement(account, entries)
	assert.Contains(t, out, "Saldo inicial:")
	assert.Contains(t, out, "R$ 2.000,00")
	assert.Contains(t, out, "R$ 500,00")
	assert.Contains(t, out, "Saldo atual:")
	assert.Contains(t, out, "R$ 1.500,00")
}

func TestLedger_SeedDemoData(t *testing.T) {
	services := newLedger(t)
	ctx := context.Background()

	log := logger.NewLogger("test")
	require.NoError(t, SeedDemoData(ctx, services, log))

	clients, err := services.ClientService.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 5)

	accounts, err := services.AccountService.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 4)

	// João owns two accounts, in opening order
	joao, err := services.AccountService.ListClientAccounts(ctx, "12345678901")
	require.NoError(t, err)
	require.Len(t, joao, 2)
	assert.Equal(t, int64(150000), joao[0].Balance)
	assert.Equal(t, int64(75000), joao[1].Balance)

	// Pedro's demo account ends at zero
	pedro, err := services.AccountService.ListClientAccounts(ctx, "11122233344")
	require.NoError(t, err)
	require.Len(t, pedro, 1)
	assert.Zero(t, pedro[0].Balance)

	// seeding twice fails on the first duplicate CPF
	assert.Error(t, SeedDemoData(ctx, services, log))
}
