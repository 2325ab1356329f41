// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// menuEntry is one selectable operation of the main menu. An empty page
// means "quit".
type menuEntry struct {
	hotkey  string
	label   string
	page    string
	section string
}

var menuEntries = []menuEntry{
	{hotkey: "d", label: "[D] Depositar", page: "deposit", section: "OPERAÇÕES"},
	{hotkey: "s", label: "[S] Sacar", page: "withdraw"},
	{hotkey: "e", label: "[E] Extrato", page: "statement"},
	{hotkey: "c", label: "[C] Criar Cliente", page: "client_create", section: "CLIENTES"},
	{hotkey: "l", label: "[L] Listar Clientes", page: "client_list"},
	{hotkey: "r", label: "[R] Remover Cliente", page: "client_remove"},
	{hotkey: "b", label: "[B] Criar Conta", page: "account_create", section: "CONTAS"},
	{hotkey: "m", label: "[M] Listar Contas", page: "account_list"},
	{hotkey: "o", label: "[O] Remover Conta", page: "account_remove"},
	{hotkey: "q", label: "[Q] Sair", page: "", section: ""},
}

// MenuModel is the main menu: a cursor over the bank operations, with
// single-letter hotkeys matching the labels.
type MenuModel struct {
	entries []menuEntry
	idx     int
	status  string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{entries: menuEntries}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(MenuNotice); ok {
		m.status = notice.Text
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
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.open(m.entries[m.idx])
	default:
		pressed := strings.ToLower(keyMsg.String())
		for _, entry := range m.entries {
			if entry.hotkey == pressed {
				return m, m.open(entry)
			}
		}
	}

	return m, nil
}

func (m *MenuModel) open(entry menuEntry) tea.Cmd {
	m.status = ""
	if entry.page == "" {
		return func() tea.Msg { return userQuitMsg{} }
	}
	page := entry.page
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, entry := range m.entries {
		if entry.section != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(entry.section)
			b.WriteString("\n")
		}
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(entry.label)
		b.WriteString("\n")
	}

	return renderPage("SISTEMA BANCÁRIO", strings.TrimRight(b.String(), "\n"),
		"enter: selecionar │ ↑/↓: navegação │ letra: atalho │ v: versão")
}
