// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package service

import (
	"fmt"
	"strings"

	"github.com/paulobof/sistema-bancario/internal/utils"
	"github.com/paulobof/sistema-bancario/models"
)

// Statement entry labels, keyed by operation kind.
var operationLabels = map[models.OperationKind]string{
	models.OperationInitial:    "Saldo inicial",
	models.OperationDeposit:    "Depósito",
	models.OperationWithdrawal: "Saque",
}

const statementDivider = "========================================"

// RenderStatement renders an account statement as a printable block of text.
// It is a pure function of its inputs: one line per log entry in append
// order, followed by the current balance. Amounts are formatted as Brazilian
// currency.
//
// Layout per entry line: label padded to 25 columns, value right-aligned in
// 15 columns.
func RenderStatement(account models.Account, entries []models.Transaction) string {
	var b strings.Builder

	b.WriteString(statementDivider)
	b.WriteByte('\n')

	if len(entries) == 0 {
		b.WriteString("Nenhuma movimentação.\n")
	} else {
		b.WriteString("Movimentações:\n")
		for _, entry := range entries {
			label, ok := operationLabels[entry.Kind]
			if !ok {
				label = string(entry.Kind)
			}
			fmt.Fprintf(&b, "%-25s %15s\n", label+":", utils.FormatBRL(entry.Amount))
		}
	}

	b.WriteString(statementDivider)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-25s %15s\n", "Saldo atual:", utils.FormatBRL(account.Balance))
	b.WriteString(statementDivider)

	return b.String()
}
