package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Discard \"" + m.message + "\"?\nThe change will not reach the server.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
