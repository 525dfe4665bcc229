package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/vape-store/internal/models"
	"github.com/Lixing-Zhang/vape-store/internal/repository"
)

func newTestEngine() *Engine {
	return NewEngine(repository.Catalog())
}

func ids(products []models.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func assertCatalogSubsequence(t *testing.T, got []models.Product) {
	t.Helper()
	catalog := repository.Catalog()
	i := 0
	for _, p := range got {
		for i < len(catalog) && catalog[i].ID != p.ID {
			i++
		}
		require.Less(t, i, len(catalog), "product %d is out of catalog order or not in catalog", p.ID)
		assert.Equal(t, catalog[i], p)
		i++
	}
}

func TestEngine_DefaultState(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, ids(e.VisibleProducts()))
	assert.Equal(t, []int64{1, 2, 3}, ids(e.FeaturedProducts()))
	assert.Equal(t, 0, e.CartCount())

	s := e.State()
	assert.Equal(t, 3, s.Categories.Len())
	assert.True(t, s.Flavors.IsEmpty())
	assert.Equal(t, Range{Min: 0, Max: 5000}, s.Price)
	assert.Equal(t, Range{Min: 0, Max: 50}, s.Nicotine)
}

func TestEngine_EmptyCategoriesMatchNothing(t *testing.T) {
	e := newTestEngine()
	for _, c := range models.Categories {
		e.SetCategorySelected(c, false)
	}

	assert.Empty(t, e.VisibleProducts())

	// Other fields cannot widen an empty category selection
	e.SetPriceRange(-100, 100000)
	e.SetNicotineRange(-1, 1000)
	assert.Empty(t, e.VisibleProducts())
}

func TestEngine_EmptyFlavorsMatchEverything(t *testing.T) {
	e := newTestEngine()
	e.SetFlavorSelected(models.FlavorMint, true)
	e.SetFlavorSelected(models.FlavorMint, false)

	assert.True(t, e.State().Flavors.IsEmpty())
	assert.Len(t, e.VisibleProducts(), 8)
}

func TestEngine_FlavorSelection(t *testing.T) {
	e := newTestEngine()
	e.SetFlavorSelected(models.FlavorBerries, true)

	visible := e.VisibleProducts()
	require.Len(t, visible, 1)
	assert.Equal(t, "Elf Bar BC5000", visible[0].Name)

	e.SetFlavorSelected(models.FlavorTobacco, true)
	assert.Equal(t, []int64{1, 3, 5}, ids(e.VisibleProducts()))
}

func TestEngine_PriceRange(t *testing.T) {
	e := newTestEngine()
	e.SetPriceRange(0, 1000)

	visible := e.VisibleProducts()
	assert.Equal(t, []int64{4, 7}, ids(visible))
	for _, p := range visible {
		assert.LessOrEqual(t, p.Price, 1000)
	}

	// Bounds are inclusive
	e.SetPriceRange(1190, 1290)
	assert.Equal(t, []int64{3, 8}, ids(e.VisibleProducts()))
}

func TestEngine_RangesAreNotReorderedOrClamped(t *testing.T) {
	e := newTestEngine()

	e.SetPriceRange(3000, 1000)
	assert.Equal(t, Range{Min: 3000, Max: 1000}, e.State().Price)
	assert.Empty(t, e.VisibleProducts())

	e.SetPriceRange(-50, 9000)
	assert.Equal(t, Range{Min: -50, Max: 9000}, e.State().Price)
	assert.Len(t, e.VisibleProducts(), 8)
}

func TestEngine_NicotineRange(t *testing.T) {
	e := newTestEngine()

	e.SetNicotineRange(0, 0)
	assert.Equal(t, []int64{1, 2, 5, 6}, ids(e.VisibleProducts()))

	e.SetNicotineRange(20, 35)
	assert.Equal(t, []int64{4, 7}, ids(e.VisibleProducts()))
}

func TestEngine_ConjunctiveFilters(t *testing.T) {
	e := newTestEngine()
	e.SetCategorySelected(models.CategoryCigarette, false)
	e.SetCategorySelected(models.CategoryLiquid, false)
	e.SetNicotineRange(50, 50)
	e.SetPriceRange(0, 1200)

	assert.Equal(t, []int64{3}, ids(e.VisibleProducts()))
}

func TestEngine_CategorySelectionIsIdempotent(t *testing.T) {
	e := newTestEngine()
	e.SetCategorySelected(models.CategoryVape, false)

	e.SetCategorySelected(models.CategoryVape, true)
	first := e.State().Snapshot()
	e.SetCategorySelected(models.CategoryVape, true)

	assert.Equal(t, first, e.State().Snapshot())
	assert.Equal(t, 3, e.State().Categories.Len())
}

func TestEngine_ResetFilters(t *testing.T) {
	e := newTestEngine()
	e.SetCategorySelected(models.CategoryVape, false)
	e.SetFlavorSelected(models.FlavorMango, true)
	e.SetPriceRange(100, 200)
	e.SetNicotineRange(5, 10)
	e.IncrementCart()
	e.IncrementCart()

	e.ResetFilters()

	assert.Equal(t, repository.Catalog(), e.VisibleProducts())
	assert.Equal(t, 2, e.CartCount())
	assert.Equal(t, DefaultState().Snapshot().Categories, e.State().Snapshot().Categories)
}

func TestEngine_IncrementCart(t *testing.T) {
	e := newTestEngine()

	for i := 1; i <= 25; i++ {
		e.IncrementCart()
		require.Equal(t, i, e.CartCount())
	}
}

func TestEngine_InvalidSelectionsPanic(t *testing.T) {
	e := newTestEngine()

	assert.Panics(t, func() { e.SetCategorySelected(models.Category("pipe"), true) })
	assert.Panics(t, func() { e.SetFlavorSelected("Кола", true) })
}

func TestEngine_StateIsACopy(t *testing.T) {
	e := newTestEngine()

	s := e.State()
	s.Categories.Remove(models.CategoryVape)
	s.Flavors.Add(models.FlavorMint)

	assert.Len(t, e.VisibleProducts(), 8)
}

func TestEngine_FeaturedIgnoresFilters(t *testing.T) {
	e := newTestEngine()
	for _, c := range models.Categories {
		e.SetCategorySelected(c, false)
	}
	e.SetPriceRange(0, 0)

	assert.Equal(t, []int64{1, 2, 3}, ids(e.FeaturedProducts()))
}

func TestEngine_VisibleProductsPreserveCatalogOrder(t *testing.T) {
	states := []func(e *Engine){
		func(e *Engine) {},
		func(e *Engine) {
			e.SetFlavorSelected(models.FlavorUniversal, true)
			e.SetFlavorSelected(models.FlavorMango, true)
		},
		func(e *Engine) { e.SetCategorySelected(models.CategoryVape, false) },
		func(e *Engine) {
			e.SetPriceRange(500, 3000)
			e.SetNicotineRange(0, 40)
		},
		func(e *Engine) {
			e.SetCategorySelected(models.CategoryCigarette, false)
			e.SetFlavorSelected(models.FlavorTobacco, true)
		},
	}

	for i, apply := range states {
		e := newTestEngine()
		apply(e)
		visible := e.VisibleProducts()
		t.Logf("state %d: %v", i, ids(visible))
		assertCatalogSubsequence(t, visible)

		// Queries are side-effect free
		assert.Equal(t, visible, e.VisibleProducts())
	}
}

func TestState_Snapshot(t *testing.T) {
	s := DefaultState()
	s.Flavors.Add(models.FlavorMango)
	s.Flavors.Add(models.FlavorTobacco)
	s.CartCount = 4

	snap := s.Snapshot()

	assert.Equal(t, []models.Category{models.CategoryCigarette, models.CategoryVape, models.CategoryLiquid}, snap.Categories)
	assert.Equal(t, []string{models.FlavorTobacco, models.FlavorMango}, snap.Flavors)
	assert.Equal(t, 4, snap.CartCount)
}
