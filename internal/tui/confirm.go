package tui

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	content := m.question + " (y/n)?\n\n"
	content += "y yes    any other key no"
	return overlayBoxStyle.Render(content)
}
