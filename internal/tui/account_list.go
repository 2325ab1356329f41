// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/internal/utils"
	"github.com/paulobof/sistema-bancario/models"
)

// AccountListModel lists every open account with its owner and balance.
type AccountListModel struct {
	ctx      context.Context
	accounts service.AccountService
	limits   config.Limits

	items   []models.Account
	loading bool
	errMsg  string
}

func NewAccountListModel(ctx context.Context, accounts service.AccountService, limits config.Limits) *AccountListModel {
	return &AccountListModel{
		ctx:      ctx,
		accounts: accounts,
		limits:   limits,
	}
}

func (m *AccountListModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *AccountListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(accountsLoadedMsg); ok {
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}
		m.items = result.accounts
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
	}

	return m, nil
}

func (m *AccountListModel) View() string {
	if m.loading {
		return renderPage("LISTAR CONTAS", "Carregando...", "esc: voltar")
	}
	if m.errMsg != "" {
		return renderPage("LISTAR CONTAS", errorStyle.Render("Erro: "+m.errMsg), "esc: voltar")
	}
	if len(m.items) == 0 {
		return renderPage("LISTAR CONTAS", app.MsgNoAccounts, "esc: voltar")
	}

	nameColWidth := lipgloss.Width("Cliente")
	for _, item := range m.items {
		name := fitText(item.ClientName, 30)
		if w := lipgloss.Width(name); w > nameColWidth {
			nameColWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-6s │ %-7s │ %-*s │ %s\n", "Conta", "Agência", nameColWidth, "Cliente", "Saldo"))
	b.WriteString(strings.Repeat("─", 6))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", lipgloss.Width("Agência")))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 15))
	b.WriteString("\n")

	for _, item := range m.items {
		b.WriteString(fmt.Sprintf("%-6d │ %-7s │ %-*s │ %s\n",
			item.Number, item.Agency, nameColWidth, fitText(item.ClientName, 30),
			utils.FormatBRL(item.Balance)))
	}

	b.WriteString(fmt.Sprintf("\nTotal: %d conta(s)", len(m.items)))

	return renderPage("LISTAR CONTAS", strings.TrimRight(b.String(), "\n"), "esc: voltar")
}

func (m *AccountListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		items, err := accounts.ListAccounts(ctx)
		return accountsLoadedMsg{accounts: items, err: err}
	}
}
