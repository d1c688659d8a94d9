package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"catalogctl/internal/core/lifecycle"
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenCreate:
		return m.viewCreate()
	case screenEdit:
		return m.viewEdit()
	case screenDetail:
		return m.viewDetail()
	case screenConfirmDelete:
		return m.modal.Overlay(m.width, m.height)
	default:
		return m.viewList()
	}
}

func (m Model) viewLogin() string {
	var lines []string
	if m.notice != "" {
		lines = append(lines, statusStyle.Render(m.notice), "")
	}

	if m.loginForm != nil {
		lines = append(lines, m.loginForm.View())
	}

	if m.auth.State() == lifecycle.StatePending {
		lines = append(lines, "", statusStyle.Render(m.spinner.View()+" Signing in..."))
	} else if err := m.auth.Err(); err != nil {
		lines = append(lines, "", errorStyle.Render("Login failed: "+err.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewCreate() string {
	header := titleStyle.Render("New Product")

	body := ""
	if m.createForm != nil {
		body = m.createForm.View()
	}

	footer := statusStyle.Render("esc cancel")
	if m.products.CreateState() == lifecycle.StatePending {
		footer = statusStyle.Render(m.spinner.View() + " Creating...")
	} else if err := m.products.Err(); err != nil {
		footer = errorStyle.Render(err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m Model) viewEdit() string {
	header := titleStyle.Render("Edit Product")

	body := ""
	if m.editForm != nil {
		body = m.editForm.View()
	}

	footer := statusStyle.Render("esc cancel")
	if m.products.UpdateState() == lifecycle.StatePending {
		footer = statusStyle.Render(m.spinner.View() + " Saving...")
	} else if err := m.products.Err(); err != nil {
		footer = errorStyle.Render(err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m Model) viewDetail() string {
	if m.detail == nil {
		loading := statusStyle.Render(m.spinner.View() + " Loading product...")
		if m.products.FetchState() == lifecycle.StateFailed {
			if err := m.products.Err(); err != nil {
				loading = errorStyle.Render(err.Error())
			}
		}
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
		}
		return loading
	}

	footer := statusStyle.Render("↑/↓ scroll " + iconDot + " e edit " + iconDot + " d delete " + iconDot + " esc back")
	if err := m.products.Err(); err != nil {
		footer = errorStyle.Render(err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.detail.View(), footer)
}

func (m Model) viewList() string {
	title := "Catalog"
	if email := m.auth.Session().Email; email != "" {
		title += metaStyle.Render("  " + email)
	}
	header := titleStyle.Render(title)

	searchLine := ""
	if m.searching {
		searchLine = m.searchInput.View()
	} else if s := m.products.Search(); s != "" {
		searchLine = statusStyle.Render("Filter: " + s + "  (/ to edit)")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		searchLine,
		m.list.View(),
		m.statusLine(),
	)
}

// statusLine renders the footer for the list screen. A pending operation
// shows the spinner; a failed one shows its error until the next success.
func (m Model) statusLine() string {
	if m.products.Busy() {
		return statusStyle.Render(m.spinner.View() + " Working...")
	}
	if err := m.products.Err(); err != nil {
		return errorStyle.Render(err.Error())
	}
	return statusStyle.Render(fmt.Sprintf("Page %d/%d", m.products.Page(), m.products.TotalPages()))
}
