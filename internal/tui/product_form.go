package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"catalogctl/internal/core/catalog"
)

// ProductForm wraps a huh.Form for creating a product.
type ProductForm struct {
	form        *huh.Form
	name        string
	description string
	price       string
	stock       string
	category    string

	// images carry through unchanged; the form has no field for them.
	images []string
}

// NewProductForm creates an empty product creation form. Field
// validation mirrors catalog.Draft's constraints so invalid input never
// reaches the store.
func NewProductForm() *ProductForm {
	f := &ProductForm{}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("product name is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&f.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Price").
				Value(&f.price).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("price must be a number")
					}
					if v <= 0 {
						return errors.New("price must be greater than 0")
					}
					return nil
				}),
			huh.NewInput().
				Title("Stock").
				Value(&f.stock).
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return errors.New("stock must be a whole number")
					}
					if v < 0 {
						return errors.New("stock must be 0 or greater")
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Value(&f.category).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("category is required")
					}
					return nil
				}),
		),
	)

	return f
}

// NewEditProductForm creates a product form pre-filled from an existing
// product. The form fields hold pointers into the struct, so setting the
// values after construction is enough.
func NewEditProductForm(p catalog.Product) *ProductForm {
	f := NewProductForm()
	f.name = p.Name
	f.description = p.Description
	f.price = strconv.FormatFloat(p.Price, 'f', -1, 64)
	f.stock = strconv.Itoa(p.Stock)
	f.category = p.Category.Name
	f.images = p.Images
	return f
}

// Form returns the underlying huh.Form for tea.Model integration.
func (f *ProductForm) Form() *huh.Form {
	return f.form
}

// Draft returns the entered product draft. Only valid once the form
// completes, after which the parse calls cannot fail.
func (f *ProductForm) Draft() catalog.Draft {
	price, _ := strconv.ParseFloat(strings.TrimSpace(f.price), 64)
	stock, _ := strconv.Atoi(strings.TrimSpace(f.stock))

	return catalog.Draft{
		Name:        strings.TrimSpace(f.name),
		Description: strings.TrimSpace(f.description),
		Price:       price,
		Stock:       stock,
		Category:    strings.TrimSpace(f.category),
		Images:      f.images,
	}
}

// View renders the form.
func (f *ProductForm) View() string {
	return f.form.View()
}
