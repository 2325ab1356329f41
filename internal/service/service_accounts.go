// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/store"
	"github.com/paulobof/sistema-bancario/internal/utils"
	"github.com/paulobof/sistema-bancario/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	clientRepository  store.ClientRepository
	uuidGenerator     *utils.UUIDGenerator
	limits            config.Limits

	logger *logger.Logger
}

// NewAccountService constructs the account ledger service with the
// configured business-rule limits.
func NewAccountService(storages *store.Storages, limits config.Limits, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: storages.AccountRepository,
		clientRepository:  storages.ClientRepository,
		uuidGenerator:     utils.NewUUIDGenerator(),
		limits:            limits,
		logger:            logger,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, cpf string) (models.Account, error) {
	log := logger.FromContext(ctx)

	owner, err := s.clientRepository.FindClient(ctx, cpf)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return models.Account{}, ErrClientNotFound
		}
		return models.Account{}, err
	}

	account := models.Account{
		Agency:     s.limits.Agency,
		ClientCPF:  owner.CPF,
		ClientName: owner.Name,
	}
	opening := models.Transaction{
		ID:        s.uuidGenerator.Generate(),
		Kind:      models.OperationInitial,
		Amount:    0,
		CreatedAt: time.Now(),
	}

	created, err := s.accountRepository.CreateAccount(ctx, account, opening)
	if err != nil {
		log.Err(err).Str("func", "accountService.CreateAccount").Str("cpf", cpf).Msg("error creating account")
		return models.Account{}, err
	}
	created.ClientName = owner.Name

	log.Info().Int64("number", created.Number).Str("cpf", cpf).Msg("account opened")
	return created, nil
}

func (s *accountService) Deposit(ctx context.Context, number int64, amount int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := s.getAccount(ctx, number)
	if err != nil {
		return models.Account{}, err
	}

	if amount <= 0 {
		return models.Account{}, ErrInvalidAmount
	}

	entry := models.Transaction{
		ID:            s.uuidGenerator.Generate(),
		AccountNumber: number,
		Kind:          models.OperationDeposit,
		Amount:        amount,
		CreatedAt:     time.Now(),
	}
	newBalance := account.Balance + amount

	if err := s.appendOperation(ctx, entry, newBalance); err != nil {
		return models.Account{}, err
	}

	account.Balance = newBalance
	log.Info().Int64("number", number).Int64("amount", amount).Msg("deposit made")
	return account, nil
}

// Withdraw applies the withdrawal business rules in strict order:
//  1. withdrawal count at or over the limit → [ErrWithdrawalLimitReached]
//  2. amount over the balance → [ErrInsufficientFunds]
//  3. amount over the per-withdrawal cap → [ErrAmountOverWithdrawalCap]
//  4. amount not positive → [ErrInvalidAmount]
//
// Only when every rule passes are the balance and the log updated, together.
func (s *accountService) Withdraw(ctx context.Context, number int64, amount int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := s.getAccount(ctx, number)
	if err != nil {
		return models.Account{}, err
	}

	count, err := s.accountRepository.CountWithdrawals(ctx, number, s.withdrawalWindowStart())
	if err != nil {
		return models.Account{}, err
	}

	switch {
	case count >= int64(s.limits.MaxWithdrawals):
		return models.Account{}, ErrWithdrawalLimitReached
	case amount > account.Balance:
		return models.Account{}, ErrInsufficientFunds
	case amount > s.limits.WithdrawalCap:
		return models.Account{}, ErrAmountOverWithdrawalCap
	case amount <= 0:
		return models.Account{}, ErrInvalidAmount
	}

	entry := models.Transaction{
		ID:            s.uuidGenerator.Generate(),
		AccountNumber: number,
		Kind:          models.OperationWithdrawal,
		Amount:        amount,
		CreatedAt:     time.Now(),
	}
	newBalance := account.Balance - amount

	if err := s.appendOperation(ctx, entry, newBalance); err != nil {
		return models.Account{}, err
	}

	account.Balance = newBalance
	log.Info().Int64("number", number).Int64("amount", amount).Msg("withdrawal made")
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.accountRepository.ListAccounts(ctx)
}

func (s *accountService) ListClientAccounts(ctx context.Context, cpf string) ([]models.Account, error) {
	return s.accountRepository.ListAccountsByClient(ctx, cpf)
}

func (s *accountService) Statement(ctx context.Context, number int64) (models.Account, []models.Transaction, error) {
	account, err := s.getAccount(ctx, number)
	if err != nil {
		return models.Account{}, nil, err
	}

	entries, err := s.accountRepository.ListTransactions(ctx, number)
	if err != nil {
		return models.Account{}, nil, err
	}

	return account, entries, nil
}

// RemoveAccount removes one account. The checks run in order: the account
// must exist, its balance must be exactly zero, and the caller must have
// confirmed the removal. A negative confirmation cancels the operation with
// [ErrOperationCancelled] and changes nothing. The freed number is never
// reassigned.
func (s *accountService) RemoveAccount(ctx context.Context, number int64, confirmed bool) error {
	log := logger.FromContext(ctx)

	account, err := s.getAccount(ctx, number)
	if err != nil {
		return err
	}

	if account.Balance != 0 {
		return fmt.Errorf("%w: saldo %s", ErrNonZeroBalance, utils.FormatBRL(account.Balance))
	}

	if !confirmed {
		return ErrOperationCancelled
	}

	if err := s.accountRepository.DeleteAccount(ctx, number); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	log.Info().Int64("number", number).Msg("account removed")
	return nil
}

func (s *accountService) getAccount(ctx context.Context, number int64) (models.Account, error) {
	account, err := s.accountRepository.GetAccount(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, ErrAccountNotFound
		}
		return models.Account{}, err
	}

	return account, nil
}

func (s *accountService) appendOperation(ctx context.Context, entry models.Transaction, newBalance int64) error {
	if err := s.accountRepository.AppendOperation(ctx, entry, newBalance); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	return nil
}

// withdrawalWindowStart returns the instant withdrawals are counted from,
// according to the configured reset policy: local midnight for daily resets,
// nil (count everything) for the lifetime policy.
func (s *accountService) withdrawalWindowStart() *time.Time {
	if s.limits.WithdrawalReset != config.ResetDaily {
		return nil
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &midnight
}
