package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"bookcatalog/internal/domain/entity"
)

func ptr(v float64) *float64 { return &v }

func mongoBook() entity.Product {
	return entity.Product{
		ID:          "1",
		Title:       "MongoDB: The Definitive Guide",
		Author:      "Shannon Bradshaw",
		Description: "The definitive guide to MongoDB.",
		Category:    "MongoDB",
		Price:       39.99,
		Stock:       25,
		Specifications: entity.Specifications{
			Publisher: "O'Reilly Media",
			Pages:     512,
			Year:      2019,
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestInitialViewShowsLoading(t *testing.T) {
	m := NewModel(nil, nil)

	assert.Equal(t, StateLoading, m.State())
	assert.Contains(t, m.View(), LoadingMessage)
}

func TestLoadedViewShowsProductStoreNameAndSearch(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook()}})

	view := m.View()
	assert.NotContains(t, view, LoadingMessage)
	assert.Contains(t, view, "MongoDB: The Definitive Guide")
	assert.Contains(t, view, StoreName)
	assert.Contains(t, view, SearchPlaceholder)
}

func TestEmptyCatalogShowsNoProductsAndZeroCount(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: nil})

	view := m.View()
	assert.Contains(t, view, NoProductsMessage)
	assert.Contains(t, view, "0 products found")
}

func TestLoadFailureShowsErrorAndNoGrid(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsFailedMsg{err: assert.AnError})

	assert.Equal(t, StateFailed, m.State())
	view := m.View()
	assert.Contains(t, view, LoadErrorMessage)
	assert.NotContains(t, view, "products found")
}

func TestFailureStateIsTerminal(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsFailedMsg{err: assert.AnError})
	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook()}})

	assert.Equal(t, StateFailed, m.State())
	assert.Contains(t, m.View(), LoadErrorMessage)
}

func TestDelayedLoadKeepsLoadingUntilResolution(t *testing.T) {
	m := NewModel(nil, nil)

	assert.Contains(t, m.View(), LoadingMessage)

	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook()}})
	view := m.View()
	assert.NotContains(t, view, LoadingMessage)
	assert.Contains(t, view, "MongoDB: The Definitive Guide")
	assert.Contains(t, view, "1 products found")
}

func TestCartTotalUpdatesAndSurvivesFailure(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook()}})

	m = update(t, m, cartTotalMsg{total: 3})
	assert.Equal(t, 3, m.CartTotal())
	assert.Contains(t, m.View(), "Cart: 3")

	// A failed refresh keeps the previous count.
	m = update(t, m, cartUnavailableMsg{err: assert.AnError})
	assert.Equal(t, 3, m.CartTotal())

	m = update(t, m, cartUpdatedMsg{total: 4})
	assert.Equal(t, 4, m.CartTotal())
}

func TestAddToCartFailureShowsBlockingAlert(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook()}})
	m = update(t, m, cartTotalMsg{total: 2})

	m = update(t, m, addToCartFailedMsg{err: assert.AnError})
	assert.Contains(t, m.View(), AddToCartErrorMessage)
	assert.Equal(t, 2, m.CartTotal())

	// Any key acknowledges the alert and nothing else happens.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.NotContains(t, m.View(), AddToCartErrorMessage)
}

func TestResumeRefreshUpdatesCartTotal(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, cartTotalMsg{total: 5})

	m = update(t, m, resumeDoneMsg{total: 0, refreshed: true})
	assert.Equal(t, 0, m.CartTotal())

	m = update(t, m, cartTotalMsg{total: 2})
	m = update(t, m, resumeDoneMsg{total: 9, refreshed: false})
	assert.Equal(t, 2, m.CartTotal())
}

func TestTypingFiltersTheGrid(t *testing.T) {
	products := []entity.Product{
		mongoBook(),
		{
			ID:       "2",
			Title:    "Learning React",
			Author:   "Alex Banks",
			Category: "React",
			Price:    45.50,
			Stock:    3,
		},
	}

	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: products})
	assert.Contains(t, m.View(), "2 products found")

	m = typeString(t, m, "react")

	view := m.View()
	assert.Contains(t, view, "1 products found")
	assert.Contains(t, view, "Learning React")
	assert.NotContains(t, view, "MongoDB: The Definitive Guide")
}

func TestEscClearsSearchBeforeQuitting(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook()}})
	m = typeString(t, m, "zzz")
	assert.Contains(t, m.View(), "0 products found")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "1 products found")
}

func TestResetRestoresDefaultView(t *testing.T) {
	featured := mongoBook()
	featured.ID = "9"
	featured.Title = "Featured Only Book"
	featured.Featured = true
	featured.Rating = ptr(4.9)
	featured.CreatedAt = time.Now()

	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook(), featured}})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.Contains(t, m.View(), "1 products found")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Contains(t, m.View(), "2 products found")
}

func TestSortCycleChangesSummary(t *testing.T) {
	m := NewModel(nil, nil)
	m = update(t, m, productsLoadedMsg{products: []entity.Product{mongoBook()}})

	assert.True(t, strings.Contains(m.View(), "sort: name"))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, strings.Contains(m.View(), "sort: author"))
}
