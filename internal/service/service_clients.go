// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/store"
	"github.com/paulobof/sistema-bancario/internal/validators"
	"github.com/paulobof/sistema-bancario/models"
)

type clientService struct {
	clientRepository  store.ClientRepository
	accountRepository store.AccountRepository
	validator         validators.Validator

	logger *logger.Logger
}

// NewClientService constructs the client registry service. The account
// repository is needed for the referential check on removal: a client that
// still owns accounts cannot be removed.
func NewClientService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository:  storages.ClientRepository,
		accountRepository: storages.AccountRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *clientService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, client); err != nil {
		return models.Client{}, err
	}

	created, err := s.clientRepository.CreateClient(ctx, client)
	if err != nil {
		if errors.Is(err, store.ErrClientAlreadyExists) {
			return models.Client{}, ErrClientAlreadyExists
		}

		log.Err(err).Str("func", "clientService.CreateClient").Str("cpf", client.CPF).Msg("error creating client")
		return models.Client{}, err
	}

	log.Info().Str("cpf", created.CPF).Msg("client registered")
	return created, nil
}

func (s *clientService) FindClient(ctx context.Context, cpf string) (models.Client, error) {
	if err := s.validator.Validate(ctx, cpf); err != nil {
		return models.Client{}, err
	}

	found, err := s.clientRepository.FindClient(ctx, cpf)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return models.Client{}, ErrClientNotFound
		}
		return models.Client{}, err
	}

	return found, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]models.ClientSummary, error) {
	return s.clientRepository.ListClients(ctx)
}

// RemoveClient removes one client from the registry. The checks run in
// order: the client must exist, must own no accounts, and the caller must
// have confirmed the removal. A negative confirmation cancels the operation
// with [ErrOperationCancelled] and changes nothing.
func (s *clientService) RemoveClient(ctx context.Context, cpf string, confirmed bool) error {
	log := logger.FromContext(ctx)

	if _, err := s.FindClient(ctx, cpf); err != nil {
		return err
	}

	accounts, err := s.accountRepository.ListAccountsByClient(ctx, cpf)
	if err != nil {
		return err
	}
	if len(accounts) > 0 {
		return fmt.Errorf("%w: %d conta(s)", ErrClientHasAccounts, len(accounts))
	}

	if !confirmed {
		return ErrOperationCancelled
	}

	if err := s.clientRepository.DeleteClient(ctx, cpf); err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	log.Info().Str("cpf", cpf).Msg("client removed")
	return nil
}
