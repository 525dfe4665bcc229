package models

// Price and nicotine slider domains
const (
	PriceMin     = 0
	PriceMax     = 5000
	PriceStep    = 100
	NicotineMin  = 0
	NicotineMax  = 50
	NicotineStep = 5
)

// FilterMetadata describes the filter options offered by the storefront
type FilterMetadata struct {
	Categories []CategoryOption `json:"categories" yaml:"categories"`
	Flavors    []string         `json:"flavors" yaml:"flavors"`
	Price      RangeDomain      `json:"price" yaml:"price"`
	Nicotine   RangeDomain      `json:"nicotine" yaml:"nicotine"`
}

// CategoryOption is a category with its display label
type CategoryOption struct {
	ID    Category `json:"id" yaml:"id"`
	Label string   `json:"label" yaml:"label"`
}

// RangeDomain is the allowed span of a range slider
type RangeDomain struct {
	Min  int `json:"min" yaml:"min"`
	Max  int `json:"max" yaml:"max"`
	Step int `json:"step" yaml:"step"`
}

// NewFilterMetadata builds the metadata from the known categories and flavors
func NewFilterMetadata() FilterMetadata {
	categories := make([]CategoryOption, 0, len(Categories))
	for _, c := range Categories {
		categories = append(categories, CategoryOption{ID: c, Label: c.Label()})
	}

	flavors := make([]string, len(Flavors))
	copy(flavors, Flavors)

	return FilterMetadata{
		Categories: categories,
		Flavors:    flavors,
		Price:      RangeDomain{Min: PriceMin, Max: PriceMax, Step: PriceStep},
		Nicotine:   RangeDomain{Min: NicotineMin, Max: NicotineMax, Step: NicotineStep},
	}
}
