package tui

import (
	"fmt"
	"strings"

	"bookcatalog/internal/domain/entity"
	"bookcatalog/internal/domain/service"
)

// Fixed user-facing strings; the display-state tests assert these exactly.
const (
	StoreName             = "MERN BookStore"
	StoreBadge            = "E-Commerce"
	LoadingMessage        = "Loading products..."
	LoadErrorMessage      = "Error loading products"
	NoProductsMessage     = "No products available"
	NoProductsHint        = "The store is being updated. Check back soon!"
	AddToCartErrorMessage = "Error adding product to cart"
	SearchPlaceholder     = "Search by title, author, description..."
	ResultsCountFormat    = "%d products found"
)

func (m Model) View() string {
	switch m.state {
	case StateLoading:
		return fmt.Sprintf("\n  %s %s\n", m.spinner.View(), LoadingMessage)
	case StateFailed:
		return "\n  " + m.styles.Error.Render(m.errMsg) + "\n"
	}

	var b strings.Builder

	header := m.styles.Header.Render(StoreName) + " " + m.styles.Badge.Render(StoreBadge)
	cart := m.styles.CartInfo.Render(fmt.Sprintf("Cart: %d", m.cartTotal))
	b.WriteString("  " + header + "   " + cart + "\n\n")

	b.WriteString("  " + m.search.View() + "\n")
	b.WriteString("  " + m.styles.Muted.Render(m.filterSummary()) + "\n\n")

	b.WriteString("  " + fmt.Sprintf(ResultsCountFormat, len(m.filtered)) + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString("  " + m.styles.Title.Render(NoProductsMessage) + "\n")
		b.WriteString("  " + m.styles.Muted.Render(NoProductsHint) + "\n")
	} else {
		for i, product := range m.filtered {
			b.WriteString(m.renderProduct(i, product))
		}
	}

	if m.alert != "" {
		b.WriteString("\n  " + m.styles.Alert.Render(m.alert))
		b.WriteString("  " + m.styles.Muted.Render("press any key to continue") + "\n")
	}

	b.WriteString("\n  " + m.styles.Help.Render(
		"enter add to cart · tab sort · ctrl+t category · ctrl+s stock · ctrl+f featured · ctrl+r reset · esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderProduct(i int, product entity.Product) string {
	marker := "  "
	titleStyle := m.styles.Title
	if i == m.cursor {
		marker = "> "
		titleStyle = m.styles.Selected
	}

	price := m.styles.Price.Render(fmt.Sprintf("%.2f RON", product.EffectivePrice()))
	if product.DiscountPrice != nil {
		price = m.styles.OldPrice.Render(fmt.Sprintf("%.2f", product.Price)) + " " + price
	}

	stock := ""
	if product.Stock == 0 {
		stock = "  " + m.styles.Error.Render("out of stock")
	}

	return fmt.Sprintf("  %s%s %s %s  %s%s\n",
		marker,
		titleStyle.Render(product.Title),
		m.styles.Author.Render("by "+product.Author),
		m.styles.Muted.Render("["+product.Category+"]"),
		price,
		stock,
	)
}

func (m Model) filterSummary() string {
	criteria := m.pipeline.Criteria()

	category := criteria.Category
	if category == service.CategoryAll {
		category = "all categories"
	}

	flags := ""
	if criteria.InStockOnly {
		flags += " · in stock"
	}
	if criteria.FeaturedOnly {
		flags += " · featured"
	}

	return fmt.Sprintf("%s · sort: %s · %.0f–%.0f RON%s",
		category, criteria.SortBy, criteria.MinPrice, criteria.MaxPrice, flags)
}
