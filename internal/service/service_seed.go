// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package service

import (
	"context"
	"fmt"

	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/models"
)

// demoClients are the sample clients seeded when demo data is enabled.
var demoClients = []models.Client{
	{
		Name:      "João Silva Santos",
		BirthDate: "15/03/1985",
		CPF:       "12345678901",
		Address:   "Rua das Flores - 123 - Centro - São Paulo/SP",
	},
	{
		Name:      "Maria Oliveira Costa",
		BirthDate: "22/07/1990",
		CPF:       "98765432109",
		Address:   "Avenida Brasil - 456 - Copacabana - Rio de Janeiro/RJ",
	},
	{
		Name:      "Pedro Souza Lima",
		BirthDate: "08/12/1978",
		CPF:       "11122233344",
		Address:   "Praça da Liberdade - 789 - Centro - Belo Horizonte/MG",
	},
	{
		Name:      "Ana Carolina Ferreira",
		BirthDate: "03/05/1992",
		CPF:       "55566677788",
		Address:   "Rua das Palmeiras - 321 - Jardins - Brasília/DF",
	},
	{
		Name:      "Carlos Eduardo Mendes",
		BirthDate: "10/11/1980",
		CPF:       "99988877766",
		Address:   "Alameda dos Anjos - 654 - Boa Viagem - Recife/PE",
	},
}

// demoOperation is one deposit or withdrawal replayed onto a seeded account.
type demoOperation struct {
	kind   models.OperationKind
	amount int64 // centavos
}

// demoAccounts describes the accounts opened for the seeded clients, each
// with the operations that produce its demo balance.
var demoAccounts = []struct {
	cpf        string
	operations []demoOperation
}{
	{
		cpf: "12345678901",
		operations: []demoOperation{
			{models.OperationDeposit, 200000},
			{models.OperationWithdrawal, 50000},
		},
	},
	{
		cpf: "12345678901",
		operations: []demoOperation{
			{models.OperationDeposit, 100000},
			{models.OperationWithdrawal, 25000},
		},
	},
	{
		cpf: "98765432109",
		operations: []demoOperation{
			{models.OperationDeposit, 300000},
			{models.OperationDeposit, 20050},
		},
	},
	{
		cpf: "11122233344",
		operations: []demoOperation{
			{models.OperationDeposit, 50000},
			{models.OperationWithdrawal, 50000},
		},
	},
}

// SeedDemoData populates an empty ledger with the sample clients and
// accounts, replaying each demo operation through the regular services so
// every seeded account carries a consistent operation log.
//
// Intended for fresh (typically in-memory) databases; seeding an already
// populated ledger fails on the first duplicate CPF.
func SeedDemoData(ctx context.Context, services *Services, log *logger.Logger) error {
	log.Info().Msg("seeding demo data")

	for _, client := range demoClients {
		if _, err := services.ClientService.CreateClient(ctx, client); err != nil {
			return fmt.Errorf("seeding client %s: %w", client.CPF, err)
		}
	}

	for _, demo := range demoAccounts {
		account, err := services.AccountService.CreateAccount(ctx, demo.cpf)
		if err != nil {
			return fmt.Errorf("seeding account for %s: %w", demo.cpf, err)
		}

		for _, op := range demo.operations {
			switch op.kind {
			case models.OperationDeposit:
				_, err = services.AccountService.Deposit(ctx, account.Number, op.amount)
			case models.OperationWithdrawal:
				_, err = services.AccountService.Withdraw(ctx, account.Number, op.amount)
			}
			if err != nil {
				return fmt.Errorf("seeding operation on account %d: %w", account.Number, err)
			}
		}
	}

	return nil
}
