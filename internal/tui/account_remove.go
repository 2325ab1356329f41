// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/internal/utils"
	"github.com/paulobof/sistema-bancario/models"
)

// AccountRemoveModel removes an account in two steps: look the number
// up and show the account, then ask for an explicit confirmation. Both
// answers go through the account service, which owns the zero-balance
// and cancellation rules.
type AccountRemoveModel struct {
	ctx      context.Context
	accounts service.AccountService
	limits   config.Limits

	input      textinput.Model
	loading    bool
	errMsg     string
	confirming bool
	account    models.Account
}

func NewAccountRemoveModel(ctx context.Context, accounts service.AccountService, limits config.Limits) *AccountRemoveModel {
	input := textinput.New()
	input.Placeholder = "número da conta"
	input.CharLimit = 12
	input.Width = 20
	input.Focus()

	return &AccountRemoveModel{
		ctx:      ctx,
		accounts: accounts,
		limits:   limits,
		input:    input,
	}
}

func (m *AccountRemoveModel) Init() tea.Cmd {
	m.confirming = false
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Focus()
	return textinput.Blink
}

func (m *AccountRemoveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case accountFoundMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}
		if result.account.Balance != 0 {
			m.errMsg = "Não é possível remover! Conta possui saldo: " +
				utils.FormatBRL(result.account.Balance) +
				". A conta deve estar zerada para ser removida."
			return m, nil
		}

		m.errMsg = ""
		m.account = result.account
		m.confirming = true
		return m, nil

	case accountRemovedMsg:
		m.loading = false
		m.confirming = false
		if result.err != nil {
			if errors.Is(result.err, service.ErrOperationCancelled) {
				return m, func() tea.Msg {
					return NavigateTo{Page: "menu", Payload: MenuNotice{Text: "Remoção cancelada."}}
				}
			}
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}

		if getLastAccountNumber() == result.number {
			clearLastAccountNumber()
		}
		notice := fmt.Sprintf("Conta %d removida com sucesso!", result.number)
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: MenuNotice{Text: notice}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		if m.loading {
			return m, nil
		}
		switch decideConfirmation(keyMsg.String()) {
		case confirmAccepted:
			m.loading = true
			return m, m.cmdRemove(m.account.Number, true)
		case confirmDeclined:
			m.loading = true
			return m, m.cmdRemove(m.account.Number, false)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.errMsg = ""
		m.input.SetValue("")
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "enter":
		if m.loading {
			return m, nil
		}

		raw := strings.TrimSpace(m.input.Value())
		if raw == "" {
			m.errMsg = app.MsgAccountNumberRequired
			return m, nil
		}

		number, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			m.errMsg = app.MsgInvalidNumber
			return m, nil
		}

		m.errMsg = ""
		m.loading = true
		return m, m.cmdFind(number)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AccountRemoveModel) View() string {
	if m.confirming {
		return renderConfirmPrompt(
			fmt.Sprintf("Conta: %d  Agência: %s", m.account.Number, m.account.Agency),
			"Cliente: "+m.account.ClientName,
			"Saldo: "+utils.FormatBRL(m.account.Balance),
		)
	}

	var b strings.Builder
	b.WriteString("Conta │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.loading {
		b.WriteString("\n[Buscando...]")
	}
	b.WriteString(renderFormError(m.errMsg))

	return renderPage("REMOVER CONTA", strings.TrimRight(b.String(), "\n"),
		"esc: voltar │ enter: buscar")
}

func (m *AccountRemoveModel) cmdFind(number int64) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		account, _, err := accounts.Statement(ctx, number)
		return accountFoundMsg{account: account, err: err}
	}
}

func (m *AccountRemoveModel) cmdRemove(number int64, confirmed bool) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		err := accounts.RemoveAccount(ctx, number, confirmed)
		return accountRemovedMsg{number: number, err: err}
	}
}
