// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/models"
)

// ClientCreateModel is the client registration form: full name, CPF,
// birth date and address. Validation beyond required fields is done by
// the client service.
type ClientCreateModel struct {
	ctx     context.Context
	clients service.ClientService
	limits  config.Limits

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewClientCreateModel(ctx context.Context, clients service.ClientService, limits config.Limits) *ClientCreateModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "nome e sobrenome"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "somente números (11 dígitos)"
	fields[1].CharLimit = 11
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "dd/mm/aaaa"
	fields[2].CharLimit = 10
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "logradouro - nro - bairro - cidade/UF"
	fields[3].Width = 40

	return &ClientCreateModel{
		ctx:     ctx,
		clients: clients,
		limits:  limits,
		inputs:  fields,
	}
}

func (m *ClientCreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ClientCreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(clientSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		notice := "Cliente " + result.client.Name + " criado com sucesso!"
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

			client := models.Client{
				Name:      strings.TrimSpace(m.inputs[0].Value()),
				CPF:       strings.TrimSpace(m.inputs[1].Value()),
				BirthDate: strings.TrimSpace(m.inputs[2].Value()),
				Address:   strings.TrimSpace(m.inputs[3].Value()),
			}

			switch {
			case client.Name == "":
				m.errMsg = app.MsgNameRequired
				return m, nil
			case client.CPF == "":
				m.errMsg = app.MsgCPFRequired
				return m, nil
			case client.BirthDate == "":
				m.errMsg = app.MsgBirthDateRequired
				return m, nil
			case client.Address == "":
				m.errMsg = app.MsgAddressRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdCreate(client)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ClientCreateModel) View() string {
	var b strings.Builder
	b.WriteString("Campo       │ Valor\n")
	b.WriteString("────────────┼────────────────────────────────────\n")
	b.WriteString("Nome        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("CPF         │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Nascimento  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Endereço    │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Salvando...]")
	}
	b.WriteString(renderFormError(m.errMsg))

	return renderPage("CRIAR CLIENTE", strings.TrimRight(b.String(), "\n"),
		"esc: voltar │ tab: próximo campo │ enter: confirmar")
}

func (m *ClientCreateModel) cmdCreate(client models.Client) tea.Cmd {
	ctx := m.ctx
	clients := m.clients

	return func() tea.Msg {
		created, err := clients.CreateClient(ctx, client)
		return clientSavedMsg{client: created, err: err}
	}
}

func (m *ClientCreateModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *ClientCreateModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ClientCreateModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
