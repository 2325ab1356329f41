package tui

import "strings"

// confirmDecision is the outcome of a confirmation keypress.
type confirmDecision int

const (
	confirmPending confirmDecision = iota
	confirmAccepted
	confirmDeclined
)

// decideConfirmation maps a keypress on a confirmation prompt to a
// decision. "s" accepts, "n" and esc decline, anything else keeps the
// prompt open.
func decideConfirmation(pressed string) confirmDecision {
	switch pressed {
	case "s", "S":
		return confirmAccepted
	case "n", "N", "esc":
		return confirmDeclined
	}
	return confirmPending
}

// renderConfirmPrompt renders a boxed removal confirmation with the
// given detail lines.
func renderConfirmPrompt(lines ...string) string {
	var b strings.Builder
	b.WriteString("CONFIRMAÇÃO DE REMOÇÃO\n\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\nConfirma a remoção?\n")
	b.WriteString("s sim    n não")
	return appStyle.Render(overlayBoxStyle.Render(b.String()))
}
