// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
)

// AccountCreateModel opens a new account for an existing client.
type AccountCreateModel struct {
	ctx      context.Context
	accounts service.AccountService
	limits   config.Limits

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewAccountCreateModel(ctx context.Context, accounts service.AccountService, limits config.Limits) *AccountCreateModel {
	input := textinput.New()
	input.Placeholder = "CPF do cliente"
	input.CharLimit = 11
	input.Width = 20
	input.Focus()

	return &AccountCreateModel{
		ctx:      ctx,
		accounts: accounts,
		limits:   limits,
		input:    input,
	}
}

func (m *AccountCreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AccountCreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(accountCreatedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}

		m.errMsg = ""
		m.input.SetValue("")
		setLastAccountNumber(result.account.Number)
		notice := fmt.Sprintf("Conta criada com sucesso! Agência: %s  Conta: %d",
			result.account.Agency, result.account.Number)
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
			m.input.SetValue("")
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			cpf := strings.TrimSpace(m.input.Value())
			if cpf == "" {
				m.errMsg = app.MsgCPFRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdCreate(cpf)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AccountCreateModel) View() string {
	var b strings.Builder
	b.WriteString("CPF │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	b.WriteString("\nAgência: ")
	b.WriteString(m.limits.Agency)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Criando...]")
	}
	b.WriteString(renderFormError(m.errMsg))

	return renderPage("CRIAR CONTA", strings.TrimRight(b.String(), "\n"),
		"esc: voltar │ enter: confirmar")
}

func (m *AccountCreateModel) cmdCreate(cpf string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		account, err := accounts.CreateAccount(ctx, cpf)
		return accountCreatedMsg{account: account, err: err}
	}
}
