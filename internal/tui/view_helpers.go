package tui

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	headingWidth = 30
	bannerWidth  = 60

	clearSequence = "\033[H\033[2J"
)

func (t *TUI) printLn(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

func (t *TUI) readLine(prompt string) (string, error) {
	return t.in.ReadLine(prompt)
}

func (t *TUI) printDivider(width int, pattern string) {
	t.printLn("%s", strings.Repeat(pattern, width))
}

func (t *TUI) printHeading(title string) {
	t.printDivider(headingWidth, "-")
	t.printLn("%s", centered(title, headingWidth))
	t.printDivider(headingWidth, "-")
	t.printLn("")
}

func (t *TUI) printAlert(a alert) {
	t.palette.fprintln(t.out, a)
}

func (t *TUI) clearScreen() {
	if t.cfg.ClearScreen {
		fmt.Fprint(t.out, clearSequence)
	}
}

// readInt prompts until the input parses as an integer.
func (t *TUI) readInt(prompt string) (int64, error) {
	for {
		input, err := t.readLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
		if err == nil {
			return n, nil
		}
		t.printAlert(errorAlert("Invalid number"))
	}
}

// confirm asks a y/n question. Only an answer starting with y or Y counts
// as yes.
func (t *TUI) confirm(question string) (bool, error) {
	t.printLn("")
	answer, err := t.readLine(question + " (y/n)? ")
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

func (t *TUI) pause() error {
	t.printLn("")
	_, err := t.readLine("Press any key to go back to main menu...")
	return err
}

func isYes(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y')
}

func centered(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

func renderAlert(a alert) string {
	return alertStyles[a.kind].Render(a.String())
}
