// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/models"
)

// ClientListModel lists every registered client with its account count.
// The CPF of the highlighted row can be copied to the clipboard.
type ClientListModel struct {
	ctx     context.Context
	clients service.ClientService
	limits  config.Limits

	items   []models.ClientSummary
	idx     int
	loading bool
	errMsg  string
	status  string
}

func NewClientListModel(ctx context.Context, clients service.ClientService, limits config.Limits) *ClientListModel {
	return &ClientListModel{
		ctx:     ctx,
		clients: clients,
		limits:  limits,
	}
}

func (m *ClientListModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.status = ""
	m.idx = 0
	return m.cmdLoad()
}

func (m *ClientListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case clientsLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}
		m.items = result.clients
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.status = "Falha ao copiar: " + result.err.Error()
		} else {
			m.status = "CPF copiado para a área de transferência"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		if m.idx < len(m.items) {
			return m, m.cmdCopy(m.items[m.idx].CPF)
		}
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	return m, nil
}

func (m *ClientListModel) View() string {
	if m.loading {
		return renderPage("LISTAR CLIENTES", "Carregando...", "esc: voltar")
	}
	if m.errMsg != "" {
		return renderPage("LISTAR CLIENTES", errorStyle.Render("Erro: "+m.errMsg), "esc: voltar")
	}
	if len(m.items) == 0 {
		return renderPage("LISTAR CLIENTES", app.MsgNoClients, "esc: voltar")
	}

	nameColWidth := lipgloss.Width("Nome")
	for _, item := range m.items {
		name := fitText(item.Name, 40)
		if w := lipgloss.Width(name); w > nameColWidth {
			nameColWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-11s │ %-*s │ %s\n", "CPF", nameColWidth, "Nome", "Contas"))
	b.WriteString("  ")
	b.WriteString(strings.Repeat("─", 11))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", lipgloss.Width("Contas")))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-11s │ %-*s │ %d\n",
			cursor, item.CPF, nameColWidth, fitText(item.Name, 40), item.AccountCount))
	}

	b.WriteString(fmt.Sprintf("\nTotal: %d cliente(s) cadastrado(s)", len(m.items)))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("LISTAR CLIENTES", strings.TrimRight(b.String(), "\n"),
		"c: copiar CPF │ ↑/↓: navegação │ esc: voltar")
}

func (m *ClientListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	clients := m.clients

	return func() tea.Msg {
		items, err := clients.ListClients(ctx)
		return clientsLoadedMsg{clients: items, err: err}
	}
}

func (m *ClientListModel) cmdCopy(cpf string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(cpf)}
	}
}
