// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/internal/utils"
)

// WithdrawModel is the withdrawal form. The business rules (daily count
// limit, balance, per-withdrawal cap, positivity) are enforced by the
// account service; the form only parses input and shows the outcome.
type WithdrawModel struct {
	ctx      context.Context
	accounts service.AccountService
	limits   config.Limits

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewWithdrawModel(ctx context.Context, accounts service.AccountService, limits config.Limits) *WithdrawModel {
	fields := make([]textinput.Model, 2)

	fields[0] = textinput.New()
	fields[0].Placeholder = "número da conta"
	fields[0].CharLimit = 12
	fields[0].Width = 20
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "0,00"
	fields[1].Width = 20

	return &WithdrawModel{
		ctx:      ctx,
		accounts: accounts,
		limits:   limits,
		inputs:   fields,
	}
}

func (m *WithdrawModel) Init() tea.Cmd {
	if n := getLastAccountNumber(); n > 0 && m.inputs[0].Value() == "" {
		m.inputs[0].SetValue(strconv.FormatInt(n, 10))
	}
	return textinput.Blink
}

func (m *WithdrawModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(operationDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}

		m.errMsg = ""
		setLastAccountNumber(result.account.Number)
		m.resetForm()
		notice := "Saque realizado com sucesso! Novo saldo: " + utils.FormatBRL(result.account.Balance)
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: MenuNotice{Text: notice}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			rawNumber := strings.TrimSpace(m.inputs[0].Value())
			rawAmount := strings.TrimSpace(m.inputs[1].Value())

			if rawNumber == "" {
				m.errMsg = app.MsgAccountNumberRequired
				return m, nil
			}

			number, err := strconv.ParseInt(rawNumber, 10, 64)
			if err != nil {
				m.errMsg = app.MsgInvalidNumber
				return m, nil
			}

			amount, err := utils.ParseBRL(rawAmount)
			if err != nil {
				m.errMsg = app.MsgInvalidNumber
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdWithdraw(number, amount)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *WithdrawModel) View() string {
	var b strings.Builder
	b.WriteString("Conta │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Valor │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	b.WriteString("\nLimite por saque: ")
	b.WriteString(utils.FormatBRL(m.limits.WithdrawalCap))
	b.WriteString("  │  Saques por dia: ")
	b.WriteString(strconv.Itoa(m.limits.MaxWithdrawals))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Sacando...]")
	}
	b.WriteString(renderFormError(m.errMsg))

	return renderPage("SAQUE", strings.TrimRight(b.String(), "\n"),
		"esc: voltar │ tab: próximo campo │ enter: confirmar")
}

func (m *WithdrawModel) cmdWithdraw(number, amount int64) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		account, err := accounts.Withdraw(ctx, number, amount)
		return operationDoneMsg{account: account, err: err}
	}
}

func (m *WithdrawModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *WithdrawModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *WithdrawModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
