package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/models"
)

// NavigateTo switches the router to another page. An optional Payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// MenuNotice carries a status line shown on the main menu after a page
// finishes an operation and navigates back.
type MenuNotice struct {
	Text string
}

// userQuitMsg is emitted by the menu when the user picks "Sair".
type userQuitMsg struct{}

type clientSavedMsg struct {
	client models.Client
	err    error
}

type clientsLoadedMsg struct {
	clients []models.ClientSummary
	err     error
}

type clientFoundMsg struct {
	client   models.Client
	accounts []models.Account
	err      error
}

type clientRemovedMsg struct {
	client models.Client
	err    error
}

type accountCreatedMsg struct {
	account models.Account
	err     error
}

type accountsLoadedMsg struct {
	accounts []models.Account
	err      error
}

type accountFoundMsg struct {
	account models.Account
	err     error
}

type accountRemovedMsg struct {
	number int64
	err    error
}

type operationDoneMsg struct {
	account models.Account
	err     error
}

type statementLoadedMsg struct {
	account models.Account
	entries []models.Transaction
	err     error
}

type copiedMsg struct {
	err error
}
