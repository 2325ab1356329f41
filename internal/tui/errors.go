// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"errors"
	"fmt"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/internal/utils"
	"github.com/paulobof/sistema-bancario/internal/validators"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves the program
// through the menu or Ctrl+C, so callers can exit cleanly.
var ErrUserQuit = errors.New("saiu do programa")

// humanizeError translates service and validator errors into the
// user-facing Portuguese messages shown by the pages. Unknown errors fall
// through as-is.
func humanizeError(err error, limits config.Limits) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		return app.MsgAccountNotFound
	case errors.Is(err, service.ErrClientNotFound):
		return app.MsgClientNotFound
	case errors.Is(err, service.ErrClientAlreadyExists):
		return "Já existe cliente com este CPF!"
	case errors.Is(err, service.ErrClientHasAccounts):
		return "Não é possível remover! Cliente possui conta(s)."
	case errors.Is(err, service.ErrNonZeroBalance):
		return "Não é possível remover! Conta possui saldo."
	case errors.Is(err, service.ErrWithdrawalLimitReached):
		if limits.WithdrawalReset == config.ResetLifetime {
			return fmt.Sprintf("Limite de saques excedido! Máximo: %d saques.", limits.MaxWithdrawals)
		}
		return fmt.Sprintf("Limite diário excedido! Máximo: %d saques.", limits.MaxWithdrawals)
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Saldo insuficiente!"
	case errors.Is(err, service.ErrAmountOverWithdrawalCap):
		return "Limite por saque: " + utils.FormatBRL(limits.WithdrawalCap)
	case errors.Is(err, service.ErrInvalidAmount):
		return app.MsgInvalidValue
	case errors.Is(err, service.ErrOperationCancelled):
		return app.MsgOperationCancelled
	case errors.Is(err, validators.ErrNameRequired):
		return app.MsgNameRequired
	case errors.Is(err, validators.ErrIncompleteName):
		return "Digite o nome completo (nome e sobrenome)!"
	case errors.Is(err, validators.ErrCPFRequired):
		return app.MsgCPFRequired
	case errors.Is(err, validators.ErrMalformedCPF):
		return "CPF deve ter exatamente 11 dígitos!"
	case errors.Is(err, validators.ErrBirthDateRequired):
		return app.MsgBirthDateRequired
	case errors.Is(err, validators.ErrAddressRequired):
		return app.MsgAddressRequired
	}

	return err.Error()
}
