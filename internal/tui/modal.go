package tui

import "github.com/charmbracelet/lipgloss"

// Modal represents a confirmation dialog.
type Modal struct {
	title           string
	message         string
	confirmSelected bool
}

// NewModal creates a new modal with the given title and message.
func NewModal(title, message string) Modal {
	return Modal{
		title:           title,
		message:         message,
		confirmSelected: true,
	}
}

// ToggleSelection switches the selected button.
func (m *Modal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (m Modal) ConfirmSelected() bool {
	return m.confirmSelected
}

// Overlay renders the modal centered within the given dimensions.
func (m Modal) Overlay(width, height int) string {
	var confirmBtn, cancelBtn string
	if m.confirmSelected {
		confirmBtn = modalButtonSelectedStyle.Render("Confirm")
		cancelBtn = modalButtonStyle.Render("Cancel")
	} else {
		confirmBtn = modalButtonStyle.Render("Confirm")
		cancelBtn = modalButtonSelectedStyle.Render("Cancel")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		modalTitleStyle.Render(m.title),
		"",
		m.message,
		buttonRow,
		modalHelpStyle.Render("←/→ select  enter confirm  esc cancel"),
	)

	modal := modalStyle.Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
