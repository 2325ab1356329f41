package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideConfirmation(t *testing.T) {
	tests := []struct {
		pressed string
		want    confirmDecision
	}{
		{"s", confirmAccepted},
		{"S", confirmAccepted},
		{"n", confirmDeclined},
		{"N", confirmDeclined},
		{"esc", confirmDeclined},
		{"enter", confirmPending},
		{"x", confirmPending},
		{"", confirmPending},
	}

	for _, tt := range tests {
		t.Run("key_"+tt.pressed, func(t *testing.T) {
			assert.Equal(t, tt.want, decideConfirmation(tt.pressed))
		})
	}
}

func TestRenderConfirmPrompt(t *testing.T) {
	out := renderConfirmPrompt("Cliente: Pedro Souza Lima", "CPF: 11122233344")

	assert.Contains(t, out, "CONFIRMAÇÃO DE REMOÇÃO")
	assert.Contains(t, out, "Cliente: Pedro Souza Lima")
	assert.Contains(t, out, "CPF: 11122233344")
	assert.Contains(t, out, "s sim")
	assert.Contains(t, out, "n não")
}
