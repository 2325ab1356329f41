// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

// Package tui implements the interactive terminal interface of the
// sistema-bancario application using Bubble Tea. A RootModel routes
// between one page per bank operation; all business rules live in the
// service layer.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/models"
)

type TUI struct {
	services *service.Services
	limits   config.Limits
}

func New(services *service.Services, limits config.Limits, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, limits: limits}, nil
}

// Run drives the whole terminal session: it registers one page per bank
// operation and blocks until the user leaves. Returns [ErrUserQuit] on a
// user-initiated exit.
func (t *TUI) Run(ctx context.Context, buildInfo models.AppBuildInfo) error {
	clients := t.services.ClientService
	accounts := t.services.AccountService

	pages := map[string]tea.Model{
		"menu":           NewMenuModel(),
		"deposit":        NewDepositModel(ctx, accounts, t.limits),
		"withdraw":       NewWithdrawModel(ctx, accounts, t.limits),
		"statement":      NewStatementModel(ctx, accounts, t.limits),
		"client_create":  NewClientCreateModel(ctx, clients, t.limits),
		"client_list":    NewClientListModel(ctx, clients, t.limits),
		"client_remove":  NewClientRemoveModel(ctx, clients, accounts, t.limits),
		"account_create": NewAccountCreateModel(ctx, accounts, t.limits),
		"account_list":   NewAccountListModel(ctx, accounts, t.limits),
		"account_remove": NewAccountRemoveModel(ctx, accounts, t.limits),
	}

	root := NewRootModel(pages, "menu", buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
