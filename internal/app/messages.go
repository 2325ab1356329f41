// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

// Package app contains shared application-layer constants used across the
// sistema-bancario terminal pages.
//
// All Msg* constants are the user-visible message strings shown by the
// terminal UI to describe the outcome of an operation. Keeping them in one
// place ensures consistent wording throughout the application.
package app

const (
	// MsgAccountNotFound is shown when the entered account number does
	// not match any existing account.
	MsgAccountNotFound = "Conta não encontrada!"

	// MsgClientNotFound is shown when the entered CPF does not match any
	// registered client.
	MsgClientNotFound = "Cliente não encontrado!"

	// MsgInvalidValue is shown when an operation amount is zero or
	// negative.
	MsgInvalidValue = "Valor inválido!"

	// MsgInvalidNumber is shown when an amount field cannot be parsed as
	// a number.
	MsgInvalidNumber = "Valor deve ser um número válido!"

	// MsgOperationCancelled is shown when the user declines a removal
	// confirmation.
	MsgOperationCancelled = "Operação cancelada pelo usuário!"

	// MsgNameRequired is shown when the client name field is left empty.
	MsgNameRequired = "Nome é obrigatório!"

	// MsgBirthDateRequired is shown when the birth date field is left
	// empty.
	MsgBirthDateRequired = "Data de nascimento é obrigatória!"

	// MsgCPFRequired is shown when the CPF field is left empty.
	MsgCPFRequired = "CPF é obrigatório!"

	// MsgAddressRequired is shown when the address field is left empty.
	MsgAddressRequired = "Endereço é obrigatório!"

	// MsgAccountNumberRequired is shown when the account number field is
	// left empty.
	MsgAccountNumberRequired = "Número da conta é obrigatório!"

	// MsgNoClients is shown by listing pages when no client is
	// registered yet.
	MsgNoClients = "Nenhum cliente cadastrado!"

	// MsgNoAccounts is shown by listing pages when no account exists yet.
	MsgNoAccounts = "Nenhuma conta cadastrada!"
)
