// Package tui implements the Bubble Tea TUI for catalogctl.
package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night color palette.
var (
	colorGreen  = lipgloss.Color("#9ece6a") // green
	colorYellow = lipgloss.Color("#e0af68") // yellow
	colorBlue   = lipgloss.Color("#7aa2f7") // blue
	colorRed    = lipgloss.Color("#d75f6b") // red
	colorGray   = lipgloss.Color("#565f89") // comment
	colorWhite  = lipgloss.Color("#c0caf5") // foreground
)

var (
	// Title style for view headers.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			PaddingLeft(1)

	// Selected item style.
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// Normal item style (terminal default).
	normalStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	// Dimmed metadata style (price, stock, category line).
	metaStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Pinned product marker.
	pinStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// Stock badge styles.
	inStockStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	outOfStockStyle = lipgloss.NewStyle().Foreground(colorRed)

	// Error line in the footer.
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			PaddingLeft(1)

	// Footer status line.
	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)

	// Modal window chrome.
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			MarginTop(1)

	modalButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(colorGray)

	modalButtonSelectedStyle = lipgloss.NewStyle().
					Padding(0, 2).
					Foreground(colorWhite).
					Background(colorBlue).
					Bold(true)
)

// Icons and symbols.
const (
	iconPin = "★"
	iconDot = "•"
)
