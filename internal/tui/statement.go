// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/internal/app"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/models"
)

// StatementModel asks for an account number, then shows the rendered
// statement. The statement text can be copied to the clipboard.
type StatementModel struct {
	ctx      context.Context
	accounts service.AccountService
	limits   config.Limits

	input   textinput.Model
	loading bool
	errMsg  string

	showing   bool
	account   models.Account
	rendered  string
	statusMsg string
}

func NewStatementModel(ctx context.Context, accounts service.AccountService, limits config.Limits) *StatementModel {
	input := textinput.New()
	input.Placeholder = "número da conta"
	input.CharLimit = 12
	input.Width = 20
	input.Focus()

	return &StatementModel{
		ctx:      ctx,
		accounts: accounts,
		limits:   limits,
		input:    input,
	}
}

func (m *StatementModel) Init() tea.Cmd {
	m.showing = false
	m.statusMsg = ""
	if n := getLastAccountNumber(); n > 0 && m.input.Value() == "" {
		m.input.SetValue(strconv.FormatInt(n, 10))
	}
	return textinput.Blink
}

func (m *StatementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case statementLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err, m.limits)
			return m, nil
		}

		m.errMsg = ""
		m.account = result.account
		m.rendered = service.RenderStatement(result.account, result.entries)
		m.showing = true
		setLastAccountNumber(result.account.Number)
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.statusMsg = "Falha ao copiar: " + result.err.Error()
		} else {
			m.statusMsg = "Extrato copiado para a área de transferência"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showing {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.showing = false
			m.statusMsg = ""
			m.input.SetValue("")
			m.input.Focus()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.copy):
			return m, m.cmdCopy()
		case key.Matches(keyMsg, keys.enter):
			m.showing = false
			m.statusMsg = ""
			return m, textinput.Blink
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
		return m, m.cmdLoad(number)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *StatementModel) View() string {
	if m.showing {
		var b strings.Builder
		fmt.Fprintf(&b, "Agência: %s  Conta: %d\n", m.account.Agency, m.account.Number)
		fmt.Fprintf(&b, "Cliente: %s\n\n", m.account.ClientName)
		b.WriteString(m.rendered)

		if m.statusMsg != "" {
			b.WriteString("\n")
			b.WriteString(m.statusMsg)
		}

		return renderPage("EXTRATO", strings.TrimRight(b.String(), "\n"),
			"c: copiar │ enter: outra conta │ esc: voltar")
	}

	var b strings.Builder
	b.WriteString("Conta │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.loading {
		b.WriteString("\n[Carregando...]")
	}
	b.WriteString(renderFormError(m.errMsg))

	return renderPage("EXTRATO", strings.TrimRight(b.String(), "\n"),
		"esc: voltar │ enter: consultar")
}

func (m *StatementModel) cmdLoad(number int64) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		account, entries, err := accounts.Statement(ctx, number)
		return statementLoadedMsg{account: account, entries: entries, err: err}
	}
}

func (m *StatementModel) cmdCopy() tea.Cmd {
	text := m.rendered
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
