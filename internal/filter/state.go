package filter

import "github.com/Lixing-Zhang/vape-store/internal/models"

// Range is a closed interval [Min, Max]
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether Min <= v <= Max
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// State holds the current selection criteria and the cart counter.
//
// An empty Categories set matches no product, while an empty Flavors set
// places no restriction on flavor.
type State struct {
	Categories Set[models.Category]
	Flavors    Set[string]
	Price      Range
	Nicotine   Range
	CartCount  int
}

// DefaultState returns the state of a fresh storefront visit
func DefaultState() State {
	s := State{}
	s.resetFilters()
	return s
}

func (s *State) resetFilters() {
	s.Categories = NewSet(models.Categories...)
	s.Flavors = Set[string]{}
	s.Price = Range{Min: models.PriceMin, Max: models.PriceMax}
	s.Nicotine = Range{Min: models.NicotineMin, Max: models.NicotineMax}
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	c := s
	c.Categories = s.Categories.Clone()
	c.Flavors = s.Flavors.Clone()
	return c
}

// Matches reports whether p satisfies every criterion of the state
func (s State) Matches(p models.Product) bool {
	return s.Categories.Contains(p.Category) &&
		s.Price.Contains(p.Price) &&
		(s.Flavors.IsEmpty() || s.Flavors.Contains(p.Flavor)) &&
		s.Nicotine.Contains(p.Nicotine)
}

// Snapshot is the serializable view of a State
type Snapshot struct {
	Categories []models.Category `json:"categories" yaml:"categories"`
	Flavors    []string          `json:"flavors" yaml:"flavors"`
	Price      Range             `json:"price" yaml:"price"`
	Nicotine   Range             `json:"nicotine" yaml:"nicotine"`
	CartCount  int               `json:"cartCount" yaml:"cartCount"`
}

// Snapshot lists categories and flavors in storefront display order
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Categories: make([]models.Category, 0, s.Categories.Len()),
		Flavors:    make([]string, 0, s.Flavors.Len()),
		Price:      s.Price,
		Nicotine:   s.Nicotine,
		CartCount:  s.CartCount,
	}
	for _, c := range models.Categories {
		if s.Categories.Contains(c) {
			snap.Categories = append(snap.Categories, c)
		}
	}
	for _, f := range models.Flavors {
		if s.Flavors.Contains(f) {
			snap.Flavors = append(snap.Flavors, f)
		}
	}
	return snap
}
