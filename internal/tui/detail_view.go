package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"catalogctl/internal/core/catalog"
)

// DetailView shows a single product in a scrollable viewport. The
// description is rendered as markdown.
type DetailView struct {
	viewport viewport.Model
	product  catalog.Product
}

// NewDetailView creates a detail view for the given product.
func NewDetailView(product catalog.Product, width, height int) DetailView {
	v := DetailView{product: product}
	v.viewport = viewport.New(width, height)
	v.viewport.SetContent(v.renderContent(width))
	return v
}

// SetSize resizes the viewport and re-renders the content.
func (v *DetailView) SetSize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
	v.viewport.SetContent(v.renderContent(width))
}

// Update routes messages to the viewport for scrolling.
func (v *DetailView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the detail view.
func (v DetailView) View() string {
	return v.viewport.View()
}

// renderContent builds the full product detail text.
func (v DetailView) renderContent(width int) string {
	p := v.product

	stock := inStockStyle.Render(fmt.Sprintf("%d in stock", p.Stock))
	if p.Stock == 0 {
		stock = outOfStockStyle.Render("out of stock")
	}

	meta := metaStyle.Render(fmt.Sprintf("$%.2f %s ", p.Price, iconDot)) + stock
	if p.Category.Name != "" {
		meta += metaStyle.Render(fmt.Sprintf(" %s %s", iconDot, p.Category.Name))
	}

	sections := []string{
		titleStyle.Render(p.Name),
		" " + meta,
		"",
		v.renderDescription(width),
	}

	if len(p.Images) > 0 {
		sections = append(sections, "", metaStyle.Render(" Images"))
		for _, img := range p.Images {
			sections = append(sections, metaStyle.Render("   "+iconDot+" ")+img)
		}
	}

	footer := fmt.Sprintf(" id %d", p.ID)
	if !p.CreatedAt.IsZero() {
		footer += fmt.Sprintf(" %s created %s", iconDot, p.CreatedAt.Format("2006-01-02"))
	}
	if !p.UpdatedAt.IsZero() {
		footer += fmt.Sprintf(" %s updated %s", iconDot, p.UpdatedAt.Format("2006-01-02"))
	}
	sections = append(sections, "", metaStyle.Render(footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDescription renders the product description as markdown,
// falling back to the raw text if rendering fails.
func (v DetailView) renderDescription(width int) string {
	wrap := width - 2
	if wrap < 20 {
		wrap = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return " " + v.product.Description
	}

	out, err := r.Render(v.product.Description)
	if err != nil {
		return " " + v.product.Description
	}
	return strings.TrimRight(out, "\n")
}
