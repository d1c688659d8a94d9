package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"catalogctl/internal/core/config"
	"catalogctl/internal/core/session"
	"catalogctl/internal/gateway"
	"catalogctl/internal/store/authstore"
	"catalogctl/internal/store/catalogstore"
)

// Screen identifies the active view.
type Screen int

const (
	screenLogin Screen = iota
	screenList
	screenDetail
	screenCreate
	screenEdit
	screenConfirmDelete
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

// Options configures the TUI behavior.
type Options struct {
	Seed session.Session // restored session (zero value = not logged in)
}

// Model is the main Bubble Tea model for catalogctl.
type Model struct {
	cfg      *config.Config
	gw       *gateway.Client
	auth     *authstore.Store
	products *catalogstore.Store
	sessions session.Store
	log      zerolog.Logger

	screen Screen
	keys   KeyMap

	list        list.Model
	spinner     spinner.Model
	searchInput textinput.Model
	searching   bool

	loginForm  *LoginForm
	createForm *ProductForm
	editForm   *ProductForm
	editID     int64
	detail     *DetailView

	modal             Modal
	pendingDeleteID   int64
	pendingDeleteName string

	// notice is shown on the login screen when a session was ended by
	// the server (rejected token).
	notice string

	width    int
	height   int
	quitting bool
}

// New creates a new TUI model.
func New(cfg *config.Config, gw *gateway.Client, sessions session.Store, log zerolog.Logger, opts Options) Model {
	l := list.New([]list.Item{}, ProductDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false) // search is server-side
	l.SetShowPagination(false)   // pagination is server-side
	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = keys.ShortHelp

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorBlue)

	search := textinput.New()
	search.Prompt = "Search: "
	search.PromptStyle = lipgloss.NewStyle().Foreground(colorBlue).PaddingLeft(1)

	m := Model{
		cfg:         cfg,
		gw:          gw,
		auth:        authstore.New(opts.Seed),
		products:    catalogstore.New(cfg.PageSize),
		sessions:    sessions,
		log:         log,
		keys:        keys,
		list:        l,
		spinner:     s,
		searchInput: search,
	}

	if m.auth.Authenticated() {
		m.screen = screenList
	} else {
		m.screen = screenLogin
		m.loginForm = NewLoginForm(opts.Seed.Email)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.screen == screenList {
		cmds = append(cmds, m.dispatchList(1, ""))
	} else if m.loginForm != nil {
		cmds = append(cmds, m.loginForm.Form().Init())
	}
	return tea.Batch(cmds...)
}

// dispatchList begins a list request for (page, search) and returns the
// command that performs it.
func (m *Model) dispatchList(page int, search string) tea.Cmd {
	seq := m.products.BeginList(page, search)
	q := gateway.ListQuery{Page: page, PageSize: m.products.PageSize(), Search: search}
	return loadProducts(m.gw, seq, m.auth.Credentials(), q)
}

// syncList rebuilds the visible list items from the collection snapshot.
func (m *Model) syncList() {
	products := m.products.Items()
	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		items = append(items, ProductItem{
			Product: p,
			Pinned:  p.MatchesAny(m.cfg.Pinned),
		})
	}
	m.list.SetItems(items)
}

// forceLogout ends the session after the server rejected the token and
// returns to the login screen.
func (m *Model) forceLogout(err error) {
	m.log.Warn().Err(err).Msg("session rejected, logging out")
	m.auth.Logout()
	if clearErr := m.sessions.Clear(); clearErr != nil {
		m.log.Warn().Err(clearErr).Msg("failed to clear persisted session")
	}
	m.notice = "Session expired, please log in again"
	m.loginForm = NewLoginForm("")
	m.screen = screenLogin
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := msg.Height - 5
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.list.SetSize(msg.Width, contentHeight)
		m.searchInput.Width = msg.Width - 12
		if m.detail != nil {
			m.detail.SetSize(msg.Width, contentHeight)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case productsLoadedMsg:
		if !m.products.ResolveList(msg.seq, msg.page, msg.err) {
			// Superseded by a newer list request; discard.
			return m, nil
		}
		if msg.err != nil {
			if gateway.IsUnauthorized(msg.err) {
				m.forceLogout(msg.err)
				return m, m.loginForm.Form().Init()
			}
			return m, nil
		}
		m.syncList()
		return m, nil

	case productLoadedMsg:
		if !m.products.ResolveFetch(msg.seq, msg.product, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			if gateway.IsUnauthorized(msg.err) {
				m.forceLogout(msg.err)
				return m, m.loginForm.Form().Init()
			}
			m.screen = screenList
			return m, nil
		}
		contentHeight := m.height - 5
		if contentHeight < 1 {
			contentHeight = 1
		}
		detail := NewDetailView(msg.product, m.width, contentHeight)
		m.detail = &detail
		return m, nil

	case createResultMsg:
		if !m.products.ResolveCreate(msg.seq, msg.product, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			if gateway.IsUnauthorized(msg.err) {
				m.forceLogout(msg.err)
				return m, m.loginForm.Form().Init()
			}
			m.screen = screenList
			return m, nil
		}
		m.createForm = nil
		m.screen = screenList
		m.syncList()
		return m, nil

	case updateResultMsg:
		if !m.products.ResolveUpdate(msg.seq, msg.product, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			if gateway.IsUnauthorized(msg.err) {
				m.forceLogout(msg.err)
				return m, m.loginForm.Form().Init()
			}
			m.editForm = nil
			m.screen = screenDetail
			return m, nil
		}
		m.editForm = nil
		m.syncList()
		if current := m.products.Current(); current != nil {
			contentHeight := m.height - 5
			if contentHeight < 1 {
				contentHeight = 1
			}
			detail := NewDetailView(*current, m.width, contentHeight)
			m.detail = &detail
			m.screen = screenDetail
		} else {
			m.screen = screenList
		}
		return m, nil

	case deleteResultMsg:
		if !m.products.ResolveDelete(msg.seq, msg.id, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			if gateway.IsUnauthorized(msg.err) {
				m.forceLogout(msg.err)
				return m, m.loginForm.Form().Init()
			}
			return m, nil
		}
		m.syncList()
		if m.screen == screenDetail && m.products.Current() == nil {
			m.detail = nil
			m.screen = screenList
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToActiveView(msg)
}

// handleLoginResult reconciles a login outcome.
func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if !m.auth.ResolveLogin(msg.seq, msg.creds, msg.err) {
		return m, nil
	}
	if msg.err != nil {
		// Stay on the login screen; the tracker holds the error.
		m.loginForm = NewLoginForm(m.loginForm.Email())
		return m, m.loginForm.Form().Init()
	}

	if err := m.sessions.Save(m.auth.Session()); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist session")
	}

	m.notice = ""
	m.loginForm = nil
	m.screen = screenList
	return m, m.dispatchList(1, "")
}

// routeToActiveView forwards non-key messages to the focused component.
func (m Model) routeToActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLogin:
		if m.loginForm != nil {
			return m.updateLoginForm(msg)
		}
	case screenCreate:
		if m.createForm != nil {
			return m.updateCreateForm(msg)
		}
	case screenEdit:
		if m.editForm != nil {
			return m.updateEditForm(msg)
		}
	case screenList:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.handleLoginKey(msg, keyStr)
	case screenConfirmDelete:
		return m.handleConfirmKey(keyStr)
	case screenCreate:
		return m.handleCreateKey(msg, keyStr)
	case screenEdit:
		return m.handleEditKey(msg, keyStr)
	case screenDetail:
		return m.handleDetailKey(msg, keyStr)
	default:
		return m.handleListKey(msg, keyStr)
	}
}

// handleLoginKey handles keys on the login screen.
func (m Model) handleLoginKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyEsc {
		m.quitting = true
		return m, tea.Quit
	}
	return m.updateLoginForm(msg)
}

// updateLoginForm routes a message to the login form and dispatches the
// login once the form completes.
func (m Model) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Form().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm.form = f

		if f.State == huh.StateCompleted {
			seq := m.auth.BeginLogin()
			return m, login(m.gw, seq, m.loginForm.Email())
		}
	}
	return m, cmd
}

// handleCreateKey handles keys on the create screen.
func (m Model) handleCreateKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyEsc {
		m.createForm = nil
		m.screen = screenList
		return m, nil
	}
	return m.updateCreateForm(msg)
}

// updateCreateForm routes a message to the create form and dispatches
// the create once the form completes.
func (m Model) updateCreateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.createForm.Form().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.createForm.form = f

		if f.State == huh.StateCompleted {
			draft := m.createForm.Draft()
			seq := m.products.BeginCreate()
			return m, createProduct(m.gw, seq, m.auth.Credentials(), draft)
		}
	}
	return m, cmd
}

// handleEditKey handles keys on the edit screen.
func (m Model) handleEditKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyEsc {
		m.editForm = nil
		m.screen = screenDetail
		return m, nil
	}
	return m.updateEditForm(msg)
}

// updateEditForm routes a message to the edit form and dispatches the
// update once the form completes.
func (m Model) updateEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.editForm.Form().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.editForm.form = f

		if f.State == huh.StateCompleted {
			draft := m.editForm.Draft()
			seq := m.products.BeginUpdate()
			return m, updateProduct(m.gw, seq, m.auth.Credentials(), m.editID, draft)
		}
	}
	return m, cmd
}

// handleConfirmKey handles keys when the delete confirmation is shown.
func (m Model) handleConfirmKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyEnter:
		id := m.pendingDeleteID
		m.pendingDeleteID = 0
		m.pendingDeleteName = ""
		if m.modal.ConfirmSelected() {
			m.screen = screenList
			seq := m.products.BeginDelete()
			return m, deleteProduct(m.gw, seq, m.auth.Credentials(), id)
		}
		m.screen = screenList
		return m, nil
	case keyEsc:
		m.pendingDeleteID = 0
		m.pendingDeleteName = ""
		m.screen = screenList
		return m, nil
	case "left", "right", "h", "l", "tab":
		m.modal.ToggleSelection()
		return m, nil
	}
	return m, nil
}

// handleDetailKey handles keys on the product detail screen.
func (m Model) handleDetailKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyEsc, "q":
		// Clear on teardown so the next detail never shows stale data.
		m.products.ClearCurrent()
		m.detail = nil
		m.screen = screenList
		return m, nil
	case "e":
		if current := m.products.Current(); current != nil {
			m.editForm = NewEditProductForm(*current)
			m.editID = current.ID
			m.screen = screenEdit
			return m, m.editForm.Form().Init()
		}
		return m, nil
	case "d":
		if current := m.products.Current(); current != nil {
			m.pendingDeleteID = current.ID
			m.pendingDeleteName = current.Name
			m.modal = NewModal("Delete Product", "Delete \""+current.Name+"\"? This cannot be undone.")
			m.screen = screenConfirmDelete
		}
		return m, nil
	}

	if m.detail != nil {
		return m, m.detail.Update(msg)
	}
	return m, nil
}

// handleListKey handles keys on the product list screen.
func (m Model) handleListKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	// Search input captures everything while focused
	if m.searching {
		switch keyStr {
		case keyEsc:
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue(m.products.Search())
			return m, nil
		case keyEnter:
			m.searching = false
			m.searchInput.Blur()
			return m, m.dispatchList(1, m.searchInput.Value())
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		return m, m.dispatchList(m.products.Page(), m.products.Search())

	case key.Matches(msg, m.keys.PrevPage):
		if m.products.Page() > 1 {
			return m, m.dispatchList(m.products.Page()-1, m.products.Search())
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.products.Page() < m.products.TotalPages() {
			return m, m.dispatchList(m.products.Page()+1, m.products.Search())
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.createForm = NewProductForm()
		m.screen = screenCreate
		return m, m.createForm.Form().Init()

	case key.Matches(msg, m.keys.Delete):
		if item := m.selectedProduct(); item != nil {
			m.pendingDeleteID = item.Product.ID
			m.pendingDeleteName = item.Product.Name
			m.modal = NewModal("Delete Product", "Delete \""+item.Product.Name+"\"? This cannot be undone.")
			m.screen = screenConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if item := m.selectedProduct(); item != nil {
			m.detail = nil
			m.screen = screenDetail
			seq := m.products.BeginFetch()
			return m, loadProduct(m.gw, seq, m.auth.Credentials(), item.Product.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectedProduct returns the currently selected product, or nil.
func (m Model) selectedProduct() *ProductItem {
	item := m.list.SelectedItem()
	if item == nil {
		return nil
	}
	if productItem, ok := item.(ProductItem); ok {
		return &productItem
	}
	return nil
}
