// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package models

import "time"

// Account represents a bank account owned by a single client.
//
// Monetary values are stored in centavos (int64) to avoid floating-point
// drift; formatting to "R$ 1.234,56" happens only at the presentation
// boundary.
type Account struct {
	// Number is the sequentially assigned account number. Numbers are
	// unique for the lifetime of the ledger and are never reused, even
	// when accounts are removed.
	Number int64 `json:"number"`

	// Agency is the fixed branch code attached to every account in this
	// deployment.
	Agency string `json:"agency"`

	// ClientCPF is the CPF of the owning client. It must reference an
	// existing client at creation time.
	ClientCPF string `json:"client_cpf"`

	// ClientName is the owner's full name, denormalized for listings
	// and statement headers.
	ClientName string `json:"client_name"`

	// Balance is the current balance in centavos. It never goes
	// negative: a withdrawal that would overdraw the account is
	// rejected.
	Balance int64 `json:"balance"`

	// CreatedAt is the timestamp when the account was opened.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
