package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"catalogctl/internal/core/catalog"
)

// ProductItem wraps a product for the list component.
type ProductItem struct {
	Product catalog.Product
	Pinned  bool
}

// FilterValue returns the value used for filtering. Filtering is server
// side (the search box issues a new list request), so this is unused but
// required by the list.Item interface.
func (i ProductItem) FilterValue() string {
	return i.Product.Name
}

// ProductDelegate handles rendering of product rows in the list.
type ProductDelegate struct{}

// Height returns the height of each item.
func (d ProductDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d ProductDelegate) Spacing() int {
	return 1
}

// Update handles item updates.
func (d ProductDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single product row: name on the first line, price,
// stock, and category on the second.
func (d ProductDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	productItem, ok := item.(ProductItem)
	if !ok {
		return
	}

	p := productItem.Product
	isSelected := index == m.Index()

	title := p.Name
	if productItem.Pinned {
		title += " " + pinStyle.Render(iconPin)
	}

	stock := fmt.Sprintf("%d in stock", p.Stock)
	stockStyled := inStockStyle.Render(stock)
	if p.Stock == 0 {
		stockStyled = outOfStockStyle.Render("out of stock")
	}

	meta := metaStyle.Render(fmt.Sprintf("$%.2f %s ", p.Price, iconDot)) + stockStyled
	if p.Category.Name != "" {
		meta += metaStyle.Render(fmt.Sprintf(" %s %s", iconDot, p.Category.Name))
	}

	cursor := "  "
	titleStyled := normalStyle.Render(title)
	if isSelected {
		cursor = selectedStyle.Render("> ")
		titleStyled = selectedStyle.Render(title)
	}

	fmt.Fprintf(w, "%s%s\n", cursor, titleStyled)
	fmt.Fprintf(w, "  %s", meta)
}
