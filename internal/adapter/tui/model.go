// Package tui renders the storefront catalog: a searchable, filterable,
// sortable product list with a cart badge. The view follows a three-state
// machine for the initial load: Loading, then Ready or Failed, both terminal.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookcatalog/internal/domain/entity"
	"bookcatalog/internal/domain/service"
	"bookcatalog/internal/usecase"
	"bookcatalog/pkg/logger"
)

type ViewState int

const (
	StateLoading ViewState = iota
	StateReady
	StateFailed
)

var sortOrder = []service.SortKey{
	service.SortByName,
	service.SortByAuthor,
	service.SortByPriceLow,
	service.SortByPriceHigh,
	service.SortByRating,
	service.SortByNewest,
}

type productsLoadedMsg struct{ products []entity.Product }

type productsFailedMsg struct{ err error }

type cartTotalMsg struct{ total int }

type cartUnavailableMsg struct{ err error }

type cartUpdatedMsg struct{ total int }

type addToCartFailedMsg struct{ err error }

type resumeDoneMsg struct {
	total     int
	refreshed bool
}

type Model struct {
	catalog *usecase.CatalogUseCase
	resume  *usecase.CheckoutResumeUseCase

	pipeline *service.FilterPipeline
	filtered []entity.Product

	state     ViewState
	errMsg    string
	cartTotal int
	alert     string

	cursor        int
	sortIndex     int
	categoryIndex int

	spinner spinner.Model
	search  textinput.Model
	styles  Styles

	width  int
	height int
}

// NewModel builds the catalog view. resume may be nil when no session store
// is available.
func NewModel(catalog *usecase.CatalogUseCase, resume *usecase.CheckoutResumeUseCase) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	search := textinput.New()
	search.Placeholder = SearchPlaceholder
	search.Prompt = "/ "
	search.Focus()

	return Model{
		catalog:  catalog,
		resume:   resume,
		pipeline: service.NewFilterPipeline(nil),
		state:    StateLoading,
		spinner:  sp,
		search:   search,
		styles:   DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	// Product load, cart load and the resume check are independent; their
	// completions may interleave in any order.
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		m.loadProducts(),
		m.loadCartTotal(),
		m.resumeCheckout(),
	)
}

func (m Model) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := m.catalog.LoadProducts(context.Background())
		if err != nil {
			return productsFailedMsg{err: err}
		}
		return productsLoadedMsg{products: products}
	}
}

func (m Model) loadCartTotal() tea.Cmd {
	return func() tea.Msg {
		total, err := m.catalog.CartTotal(context.Background())
		if err != nil {
			return cartUnavailableMsg{err: err}
		}
		return cartTotalMsg{total: total}
	}
}

func (m Model) addToCart(productID string) tea.Cmd {
	return func() tea.Msg {
		total, err := m.catalog.AddToCart(context.Background(), productID)
		if err != nil {
			return addToCartFailedMsg{err: err}
		}
		return cartUpdatedMsg{total: total}
	}
}

func (m Model) resumeCheckout() tea.Cmd {
	if m.resume == nil {
		return nil
	}
	return func() tea.Msg {
		total, refreshed, err := m.resume.Resume(context.Background())
		if err != nil {
			// Non-fatal; the markers stay put for a retry on next startup.
			logger.Error("Checkout resume check failed: %v", err)
			return nil
		}
		return resumeDoneMsg{total: total, refreshed: refreshed}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case productsLoadedMsg:
		if m.state == StateLoading {
			m.state = StateReady
		}
		m.pipeline.SetProducts(msg.products)
		m.filtered = m.pipeline.Results()
		m.cursor = 0
		return m, nil

	case productsFailedMsg:
		if m.state == StateLoading {
			m.state = StateFailed
			m.errMsg = LoadErrorMessage
		}
		return m, nil

	case cartTotalMsg:
		m.cartTotal = msg.total
		return m, nil

	case cartUnavailableMsg:
		// Already logged by the use case; prior count stays.
		return m, nil

	case cartUpdatedMsg:
		m.cartTotal = msg.total
		return m, nil

	case addToCartFailedMsg:
		m.alert = AddToCartErrorMessage
		return m, nil

	case resumeDoneMsg:
		if msg.refreshed {
			m.cartTotal = msg.total
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending alert blocks the view; any key acknowledges it.
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applySearch()
			return m, nil
		}
		return m, tea.Quit
	}

	if m.state != StateReady {
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.sortIndex = (m.sortIndex + 1) % len(sortOrder)
		m.pipeline.SetSortBy(sortOrder[m.sortIndex])
		m.refreshResults()
		return m, nil

	case "ctrl+t":
		categories := append([]string{service.CategoryAll}, m.pipeline.Categories()...)
		m.categoryIndex = (m.categoryIndex + 1) % len(categories)
		m.pipeline.SetCategory(categories[m.categoryIndex])
		m.refreshResults()
		return m, nil

	case "ctrl+s":
		m.pipeline.SetInStockOnly(!m.pipeline.Criteria().InStockOnly)
		m.refreshResults()
		return m, nil

	case "ctrl+f":
		m.pipeline.SetFeaturedOnly(!m.pipeline.Criteria().FeaturedOnly)
		m.refreshResults()
		return m, nil

	case "ctrl+r":
		m.pipeline.Reset()
		m.search.SetValue("")
		m.sortIndex = 0
		m.categoryIndex = 0
		m.refreshResults()
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.cursor < len(m.filtered) {
			product := m.filtered[m.cursor]
			if product.Stock > 0 {
				return m, m.addToCart(product.ID)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applySearch()
	}
	return m, cmd
}

func (m *Model) applySearch() {
	m.pipeline.SetSearchTerm(m.search.Value())
	m.refreshResults()
}

func (m *Model) refreshResults() {
	m.filtered = m.pipeline.Results()
	m.cursor = 0
}

// State exposes the view state for tests.
func (m Model) State() ViewState {
	return m.state
}

// CartTotal exposes the current cart count for tests.
func (m Model) CartTotal() int {
	return m.cartTotal
}
