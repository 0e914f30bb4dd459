package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bank-clients/models"
)

var cardLabels = [...]string{"Account number", "Pin code", "Name", "Phone", "Balance"}

func cardValues(c models.Client) [len(cardLabels)]string {
	return [...]string{c.AccountNumber, c.PinCode, c.Name, c.Phone, fmt.Sprintf("%d", c.Balance)}
}

// renderClientCard formats the client details block printed by the find,
// delete and update screens.
func renderClientCard(c models.Client) string {
	var b strings.Builder
	divider := strings.Repeat("=", headingWidth)

	b.WriteString("\nClient details\n")
	b.WriteString(divider)
	b.WriteString("\n")
	for i, v := range cardValues(c) {
		b.WriteString(cardLabels[i])
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	b.WriteString(divider)

	return b.String()
}

func (t *TUI) printClientCard(c models.Client) {
	t.printLn("%s", renderClientCard(c))
}
