// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package models

import "time"

// OperationKind defines the kind of a statement entry.
// The value determines the label under which the entry is rendered.
type OperationKind string

const (
	// OperationInitial is the single opening entry every account is
	// created with (amount zero).
	OperationInitial OperationKind = "inicial"

	// OperationDeposit is a credit entry appended by a successful
	// deposit.
	OperationDeposit OperationKind = "deposito"

	// OperationWithdrawal is a debit entry appended by a successful
	// withdrawal. Withdrawal entries are what the per-period
	// withdrawal cap counts.
	OperationWithdrawal OperationKind = "saque"
)

// Transaction is a single entry of an account's statement log.
//
// The log is append-only: every successful deposit or withdrawal appends
// exactly one entry, entries are never reordered or pruned, and a failed
// operation appends nothing.
type Transaction struct {
	// ID is the unique identifier of the entry (UUIDv7, so IDs sort by
	// creation time).
	ID string `json:"id"`

	// AccountNumber is the number of the account the entry belongs to.
	AccountNumber int64 `json:"account_number"`

	// Kind tells whether the entry is the opening entry, a deposit or a
	// withdrawal.
	Kind OperationKind `json:"kind"`

	// Amount is the operation amount in centavos. Always non-negative;
	// the Kind carries the direction.
	Amount int64 `json:"amount"`

	// CreatedAt is the timestamp when the entry was appended.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
