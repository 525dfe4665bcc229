// Package filter narrows the storefront catalog down to the products
// matching a visitor's current selections.
package filter

import (
	"fmt"

	"github.com/Lixing-Zhang/vape-store/internal/models"
)

// Engine owns a fixed catalog and one mutable State.
// It is not safe for concurrent use; callers serialize access.
type Engine struct {
	catalog []models.Product
	state   State
}

// NewEngine creates an engine over catalog with the default state.
// The catalog order is the order of every query result.
func NewEngine(catalog []models.Product) *Engine {
	c := make([]models.Product, len(catalog))
	copy(c, catalog)
	return &Engine{
		catalog: c,
		state:   DefaultState(),
	}
}

// SetCategorySelected adds or removes category from the selection.
// It panics if category is not a known category.
func (e *Engine) SetCategorySelected(category models.Category, included bool) {
	if !category.Valid() {
		panic(fmt.Sprintf("filter: unknown category %q", category))
	}
	e.state.Categories.Toggle(category, included)
}

// SetFlavorSelected adds or removes flavor from the selection.
// It panics if flavor is not a known flavor label.
func (e *Engine) SetFlavorSelected(flavor string, included bool) {
	if !models.ValidFlavor(flavor) {
		panic(fmt.Sprintf("filter: unknown flavor %q", flavor))
	}
	e.state.Flavors.Toggle(flavor, included)
}

// SetPriceRange replaces the price interval as given, without reordering or clamping
func (e *Engine) SetPriceRange(min, max int) {
	e.state.Price = Range{Min: min, Max: max}
}

// SetNicotineRange replaces the nicotine interval as given, without reordering or clamping
func (e *Engine) SetNicotineRange(min, max int) {
	e.state.Nicotine = Range{Min: min, Max: max}
}

// ResetFilters restores the default filters. The cart count is kept.
func (e *Engine) ResetFilters() {
	e.state.resetFilters()
}

// IncrementCart adds one item to the cart counter
func (e *Engine) IncrementCart() {
	e.state.CartCount++
}

// CartCount returns the number of items added to the cart
func (e *Engine) CartCount() int {
	return e.state.CartCount
}

// State returns a copy of the current state
func (e *Engine) State() State {
	return e.state.Clone()
}

// VisibleProducts returns the catalog products matching the current state, in catalog order
func (e *Engine) VisibleProducts() []models.Product {
	visible := make([]models.Product, 0, len(e.catalog))
	for _, p := range e.catalog {
		if e.state.Matches(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

// FeaturedProducts returns the featured catalog products in catalog order, ignoring the state
func (e *Engine) FeaturedProducts() []models.Product {
	return Featured(e.catalog)
}

// Featured returns the featured products of catalog in order
func Featured(catalog []models.Product) []models.Product {
	featured := make([]models.Product, 0)
	for _, p := range catalog {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}
