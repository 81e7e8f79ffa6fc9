package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bookcatalog/internal/domain/entity"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByAuthor    SortKey = "author"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByRating    SortKey = "rating"
	SortByNewest    SortKey = "newest"
)

const (
	DefaultMinPrice = 0.0
	DefaultMaxPrice = 200.0
)

type FilterCriteria struct {
	SearchTerm   string
	Category     string
	SortBy       SortKey
	MinPrice     float64
	MaxPrice     float64
	InStockOnly  bool
	FeaturedOnly bool
}

func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category: CategoryAll,
		SortBy:   SortByName,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// FilterPipeline owns the active criteria and recomputes the visible product
// list whenever a criterion or the source collection changes. The source
// collection is never mutated; each recomputation produces a fresh slice.
type FilterPipeline struct {
	products   []entity.Product
	categories []string
	criteria   FilterCriteria
	results    []entity.Product
	onResult   func([]entity.Product)
	collator   *collate.Collator
}

// NewFilterPipeline starts with default criteria and an empty collection.
// onResult may be nil; when set it receives every recomputed list.
func NewFilterPipeline(onResult func([]entity.Product)) *FilterPipeline {
	p := &FilterPipeline{
		criteria: DefaultCriteria(),
		onResult: onResult,
		collator: collate.New(language.Und),
	}
	p.recompute()
	return p
}

func (p *FilterPipeline) SetProducts(products []entity.Product) {
	p.products = products
	p.recompute()
}

// SetCategories supplies an explicit category list. When set it is used
// verbatim instead of deriving categories from the collection.
func (p *FilterPipeline) SetCategories(categories []string) {
	p.categories = categories
}

func (p *FilterPipeline) SetSearchTerm(term string) {
	p.criteria.SearchTerm = term
	p.recompute()
}

func (p *FilterPipeline) SetCategory(category string) {
	p.criteria.Category = category
	p.recompute()
}

func (p *FilterPipeline) SetSortBy(key SortKey) {
	p.criteria.SortBy = key
	p.recompute()
}

func (p *FilterPipeline) SetPriceRange(min, max float64) {
	p.criteria.MinPrice = min
	p.criteria.MaxPrice = max
	p.recompute()
}

func (p *FilterPipeline) SetInStockOnly(on bool) {
	p.criteria.InStockOnly = on
	p.recompute()
}

func (p *FilterPipeline) SetFeaturedOnly(on bool) {
	p.criteria.FeaturedOnly = on
	p.recompute()
}

// Reset restores every criterion to its default in one step, then recomputes.
func (p *FilterPipeline) Reset() {
	p.criteria = DefaultCriteria()
	p.recompute()
}

func (p *FilterPipeline) Criteria() FilterCriteria {
	return p.criteria
}

// Results returns the output of the latest recomputation.
func (p *FilterPipeline) Results() []entity.Product {
	return p.results
}

// Categories returns the explicit list when one was supplied, otherwise the
// distinct categories observed in the current collection in first-seen order.
func (p *FilterPipeline) Categories() []string {
	if len(p.categories) > 0 {
		return p.categories
	}
	seen := make(map[string]bool)
	var out []string
	for _, product := range p.products {
		if !seen[product.Category] {
			seen[product.Category] = true
			out = append(out, product.Category)
		}
	}
	return out
}

func (p *FilterPipeline) recompute() {
	p.results = Apply(p.products, p.criteria, p.collator)
	if p.onResult != nil {
		p.onResult(p.results)
	}
}

// Apply runs the full filter/sort pass: every active predicate must hold
// (conjunction), then the survivors are stably sorted per the sort key. A nil
// collator gets a default one. An unrecognized sort key leaves the filtered
// order unchanged.
func Apply(products []entity.Product, criteria FilterCriteria, collator *collate.Collator) []entity.Product {
	if collator == nil {
		collator = collate.New(language.Und)
	}

	term := strings.ToLower(criteria.SearchTerm)

	filtered := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if term != "" && !matchesSearch(product, term) {
			continue
		}
		if criteria.Category != CategoryAll && product.Category != criteria.Category {
			continue
		}
		price := product.EffectivePrice()
		if price < criteria.MinPrice || price > criteria.MaxPrice {
			continue
		}
		if criteria.InStockOnly && product.Stock <= 0 {
			continue
		}
		if criteria.FeaturedOnly && !product.Featured {
			continue
		}
		filtered = append(filtered, product)
	}

	if less := comparator(criteria.SortBy, filtered, collator); less != nil {
		sort.SliceStable(filtered, less)
	}

	return filtered
}

func matchesSearch(product entity.Product, term string) bool {
	return strings.Contains(strings.ToLower(product.Title), term) ||
		strings.Contains(strings.ToLower(product.Author), term) ||
		strings.Contains(strings.ToLower(product.Description), term)
}

func comparator(key SortKey, products []entity.Product, collator *collate.Collator) func(i, j int) bool {
	switch key {
	case SortByName:
		return func(i, j int) bool {
			return collator.CompareString(products[i].Title, products[j].Title) < 0
		}
	case SortByAuthor:
		return func(i, j int) bool {
			return collator.CompareString(products[i].Author, products[j].Author) < 0
		}
	case SortByPriceLow:
		return func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		}
	case SortByPriceHigh:
		return func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		}
	case SortByRating:
		return func(i, j int) bool {
			return products[i].RatingValue() > products[j].RatingValue()
		}
	case SortByNewest:
		return func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
	default:
		return nil
	}
}
