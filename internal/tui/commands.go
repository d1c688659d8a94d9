package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"catalogctl/internal/core/catalog"
	"catalogctl/internal/gateway"
)

// requestTimeout bounds every network command issued from the TUI.
const requestTimeout = 15 * time.Second

// loginResultMsg is sent when a login attempt resolves.
type loginResultMsg struct {
	seq   uint64
	creds gateway.Credentials
	err   error
}

// productsLoadedMsg is sent when a product list request resolves.
type productsLoadedMsg struct {
	seq  uint64
	page gateway.ProductPage
	err  error
}

// productLoadedMsg is sent when a fetch-one request resolves.
type productLoadedMsg struct {
	seq     uint64
	product catalog.Product
	err     error
}

// createResultMsg is sent when a create request resolves.
type createResultMsg struct {
	seq     uint64
	product catalog.Product
	err     error
}

// updateResultMsg is sent when an update request resolves.
type updateResultMsg struct {
	seq     uint64
	product catalog.Product
	err     error
}

// deleteResultMsg is sent when a delete request resolves.
type deleteResultMsg struct {
	seq uint64
	id  int64
	err error
}

// login returns a command that exchanges an email for credentials.
func login(gw *gateway.Client, seq uint64, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		creds, err := gw.Login(ctx, email)
		return loginResultMsg{seq: seq, creds: creds, err: err}
	}
}

// loadProducts returns a command that fetches one page of products.
func loadProducts(gw *gateway.Client, seq uint64, creds gateway.Credentials, q gateway.ListQuery) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		page, err := gw.ListProducts(ctx, creds, q)
		return productsLoadedMsg{seq: seq, page: page, err: err}
	}
}

// loadProduct returns a command that fetches a single product.
func loadProduct(gw *gateway.Client, seq uint64, creds gateway.Credentials, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		product, err := gw.GetProduct(ctx, creds, id)
		return productLoadedMsg{seq: seq, product: product, err: err}
	}
}

// createProduct returns a command that creates a product from a draft.
func createProduct(gw *gateway.Client, seq uint64, creds gateway.Credentials, draft catalog.Draft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		product, err := gw.CreateProduct(ctx, creds, draft)
		return createResultMsg{seq: seq, product: product, err: err}
	}
}

// updateProduct returns a command that rewrites a product from a draft.
func updateProduct(gw *gateway.Client, seq uint64, creds gateway.Credentials, id int64, draft catalog.Draft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		product, err := gw.UpdateProduct(ctx, creds, id, draft)
		return updateResultMsg{seq: seq, product: product, err: err}
	}
}

// deleteProduct returns a command that deletes a product by id.
func deleteProduct(gw *gateway.Client, seq uint64, creds gateway.Credentials, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := gw.DeleteProduct(ctx, creds, id)
		return deleteResultMsg{seq: seq, id: id, err: err}
	}
}
