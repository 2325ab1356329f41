// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package tui

import (
	"strings"

	"github.com/paulobof/sistema-bancario/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicação: Sistema Bancário\n")
	b.WriteString("Versão: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Data: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("INFORMAÇÕES DO PROGRAMA", b.String(), "esc: voltar")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
