package service

import (
	"context"
	"testing"
	"time"

	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/mock"
	"github.com/paulobof/sistema-bancario/internal/store"
	"github.com/paulobof/sistema-bancario/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLimits() config.Limits {
	return config.Limits{
		MaxWithdrawals:  3,
		WithdrawalCap:   50000,
		Agency:          "0001",
		WithdrawalReset: config.ResetDaily,
	}
}

// newTestAccountSvc builds an accountService with mocked repositories.
func newTestAccountSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	limits config.Limits,
) (
	*accountService,
	*mock.MockAccountRepository,
	*mock.MockClientRepository,
) {
	t.Helper()
	mockAccounts := mock.NewMockAccountRepository(ctrl)
	mockClients := mock.NewMockClientRepository(ctrl)

	storages := &store.Storages{
		ClientRepository:  mockClients,
		AccountRepository: mockAccounts,
	}

	svc := NewAccountService(storages, limits, logger.NewLogger("test")).(*accountService)

	return svc, mockAccounts, mockClients
}

func testAccount(balance int64) models.Account {
	return models.Account{
		Number:     1,
		Agency:     "0001",
		ClientCPF:  "11122233344",
		ClientName: "Pedro Souza Lima",
		Balance:    balance,
	}
}

// ── CreateAccount ────────────────────────────────────────────────────────────

func TestAccountService_CreateAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockClients := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	owner := models.Client{CPF: "11122233344", Name: "Pedro Souza Lima"}

	gomock.InOrder(
		mockClients.EXPECT().FindClient(ctx, owner.CPF).Return(owner, nil),
		mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, account models.Account, initial models.Transaction) (models.Account, error) {
				assert.Equal(t, "0001", account.Agency)
				assert.Equal(t, owner.CPF, account.ClientCPF)
				assert.Equal(t, models.OperationInitial, initial.Kind)
				assert.Zero(t, initial.Amount)
				assert.NotEmpty(t, initial.ID)
				account.Number = 1
				return account, nil
			},
		),
	)

	created, err := svc.CreateAccount(ctx, owner.CPF)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Number)
	assert.Zero(t, created.Balance)
}

func TestAccountService_CreateAccount_UnknownClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockClients := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	mockClients.EXPECT().FindClient(ctx, "99999999999").Return(models.Client{}, store.ErrClientNotFound)

	_, err := svc.CreateAccount(ctx, "99999999999")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

// ── Deposit ──────────────────────────────────────────────────────────────────

func TestAccountService_Deposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	gomock.InOrder(
		mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(100000), nil),
		mockAccounts.EXPECT().AppendOperation(ctx, gomock.Any(), int64(150000)).DoAndReturn(
			func(_ context.Context, entry models.Transaction, _ int64) error {
				assert.Equal(t, models.OperationDeposit, entry.Kind)
				assert.Equal(t, int64(50000), entry.Amount)
				assert.Equal(t, int64(1), entry.AccountNumber)
				return nil
			},
		),
	)

	account, err := svc.Deposit(ctx, 1, 50000)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), account.Balance)
}

func TestAccountService_Deposit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(100000), nil).Times(2)

	// zero and negative amounts append nothing
	_, err := svc.Deposit(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Deposit(ctx, 1, -500)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAccountService_Deposit_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	mockAccounts.EXPECT().GetAccount(ctx, int64(42)).Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Deposit(ctx, 42, 1000)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

// ── Withdraw ─────────────────────────────────────────────────────────────────

func TestAccountService_Withdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	gomock.InOrder(
		mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(100000), nil),
		mockAccounts.EXPECT().CountWithdrawals(ctx, int64(1), gomock.Any()).Return(int64(0), nil),
		mockAccounts.EXPECT().AppendOperation(ctx, gomock.Any(), int64(70000)).DoAndReturn(
			func(_ context.Context, entry models.Transaction, _ int64) error {
				assert.Equal(t, models.OperationWithdrawal, entry.Kind)
				assert.Equal(t, int64(30000), entry.Amount)
				return nil
			},
		),
	)

	account, err := svc.Withdraw(ctx, 1, 30000)
	require.NoError(t, err)
	assert.Equal(t, int64(70000), account.Balance)
}

// The business rules are checked in strict order; each test pins one rule
// while the input would also trip a later one.
func TestAccountService_Withdraw_RuleOrder(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		count   int64
		amount  int64
		wantErr error
	}{
		{
			// over the count limit AND over the balance: count wins
			name:    "count limit checked first",
			balance: 100,
			count:   3,
			amount:  1000,
			wantErr: ErrWithdrawalLimitReached,
		},
		{
			// over balance AND over cap: balance wins
			name:    "balance checked before cap",
			balance: 10000,
			count:   0,
			amount:  60000,
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "cap checked before amount sign",
			balance: 100000,
			count:   0,
			amount:  60000,
			wantErr: ErrAmountOverWithdrawalCap,
		},
		{
			name:    "non-positive amount rejected last",
			balance: 100000,
			count:   0,
			amount:  0,
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
			ctx := context.Background()

			mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(tt.balance), nil)
			mockAccounts.EXPECT().CountWithdrawals(ctx, int64(1), gomock.Any()).Return(tt.count, nil)

			// AppendOperation must never be called on failure
			_, err := svc.Withdraw(ctx, 1, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_Withdraw_DailyResetWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(100000), nil)
	mockAccounts.EXPECT().CountWithdrawals(ctx, int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, since *time.Time) (int64, error) {
			// daily policy counts from local midnight
			require.NotNil(t, since)
			assert.Equal(t, 0, since.Hour())
			assert.Equal(t, 0, since.Minute())
			return 0, nil
		},
	)
	mockAccounts.EXPECT().AppendOperation(ctx, gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Withdraw(ctx, 1, 1000)
	require.NoError(t, err)
}

func TestAccountService_Withdraw_LifetimeResetCountsEverything(t *testing.T) {
	limits := testLimits()
	limits.WithdrawalReset = config.ResetLifetime

	svc := &accountService{limits: limits}
	assert.Nil(t, svc.withdrawalWindowStart())

	svc.limits.WithdrawalReset = config.ResetDaily
	start := svc.withdrawalWindowStart()
	require.NotNil(t, start)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
}

// ── RemoveAccount ────────────────────────────────────────────────────────────

func TestAccountService_RemoveAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	gomock.InOrder(
		mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(0), nil),
		mockAccounts.EXPECT().DeleteAccount(ctx, int64(1)).Return(nil),
	)

	require.NoError(t, svc.RemoveAccount(ctx, 1, true))
}

func TestAccountService_RemoveAccount_NonZeroBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	// even one centavo blocks removal
	mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(1), nil)

	err := svc.RemoveAccount(ctx, 1, true)
	assert.ErrorIs(t, err, ErrNonZeroBalance)
	assert.Contains(t, err.Error(), "saldo R$ 0,01")
}

func TestAccountService_RemoveAccount_NotConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(0), nil)

	// DeleteAccount must not be called
	err := svc.RemoveAccount(ctx, 1, false)
	assert.ErrorIs(t, err, ErrOperationCancelled)
}

// ── Statement ────────────────────────────────────────────────────────────────

func TestAccountService_Statement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAccountSvc(t, ctrl, testLimits())
	ctx := context.Background()

	entries := []models.Transaction{
		{Kind: models.OperationInitial, Amount: 0},
		{Kind: models.OperationDeposit, Amount: 200000},
	}

	mockAccounts.EXPECT().GetAccount(ctx, int64(1)).Return(testAccount(200000), nil)
	mockAccounts.EXPECT().ListTransactions(ctx, int64(1)).Return(entries, nil)

	account, got, err := svc.Statement(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), account.Balance)
	assert.Len(t, got, 2)
}
