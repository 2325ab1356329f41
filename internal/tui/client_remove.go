// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/models"
)

// ClientRemoveModel removes a client in two steps: look the CPF up and
// show the client, then ask for an explicit confirmation. Both the
// accepted and the declined answer go through the client service, which
// owns the referential-integrity and cancellation rules.
type ClientRemoveModel struct {
	ctx      context.Context
	clients  service.ClientService
	accounts service.AccountService
	limits   config.Limits

	input      textinput.Model
	loading    bool
	errMsg     string
	confirming bool
	client     models.Client
}

func NewClientRemoveModel(ctx context.Context, clients service.ClientService, accounts service.AccountService, limits config.Limits) *ClientRemoveModel {
	input := textinput.New()
	input.Placeholder = "CPF do cliente"
	input.CharLimit = 11
	input.Width = 20
	input.Focus()

	return &ClientRemoveModel{
		ctx:      ctx,
		clients:  clients,
		accounts: accounts,
		limits:   limits,
		input:    input,
	}
}

func (m *ClientRemoveModel) Init() tea.Cmd {
	m.confirming = false
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Focus()
	return textinput.Blink
}

func (m *ClientRemoveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case clientFoundMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}
		if n := len(result.accounts); n > 0 {
			m.errMsg = fmt.Sprintf("Não é possível remover! Cliente possui %d conta(s). "+
				"Remova todas as contas antes de excluir o cliente.", n)
			return m, nil
		}

		m.errMsg = ""
		m.client = result.client
		m.confirming = true
		return m, nil

	case clientRemovedMsg:
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

		notice := "Cliente " + result.client.Name + " removido com sucesso!"
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
			return m, m.cmdRemove(m.client, true)
		case confirmDeclined:
			// the decline also goes through the service so the
			// cancellation rule is the same everywhere
			m.loading = true
			return m, m.cmdRemove(m.client, false)
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

		cpf := strings.TrimSpace(m.input.Value())
		if cpf == "" {
			m.errMsg = app.MsgCPFRequired
			return m, nil
		}

		m.errMsg = ""
		m.loading = true
		return m, m.cmdFind(cpf)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ClientRemoveModel) View() string {
	if m.confirming {
		return renderConfirmPrompt(
			"Cliente: "+m.client.Name,
			"CPF: "+m.client.CPF,
		)
	}

	var b strings.Builder
	b.WriteString("CPF │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.loading {
		b.WriteString("\n[Buscando...]")
	}
	b.WriteString(renderFormError(m.errMsg))

	return renderPage("REMOVER CLIENTE", strings.TrimRight(b.String(), "\n"),
		"esc: voltar │ enter: buscar")
}

func (m *ClientRemoveModel) cmdFind(cpf string) tea.Cmd {
	ctx := m.ctx
	clients := m.clients
	accounts := m.accounts

	return func() tea.Msg {
		client, err := clients.FindClient(ctx, cpf)
		if err != nil {
			return clientFoundMsg{err: err}
		}

		owned, err := accounts.ListClientAccounts(ctx, cpf)
		if err != nil {
			return clientFoundMsg{err: err}
		}
		return clientFoundMsg{client: client, accounts: owned}
	}
}

func (m *ClientRemoveModel) cmdRemove(client models.Client, confirmed bool) tea.Cmd {
	ctx := m.ctx
	clients := m.clients

	return func() tea.Msg {
		err := clients.RemoveClient(ctx, client.CPF, confirmed)
		return clientRemovedMsg{client: client, err: err}
	}
}
