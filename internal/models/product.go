package models

import "fmt"

// Category is the product type shown in the catalog filter
type Category string

const (
	CategoryCigarette Category = "cigarette"
	CategoryVape      Category = "vape"
	CategoryLiquid    Category = "liquid"
)

// Categories lists every category in display order
var Categories = []Category{CategoryCigarette, CategoryVape, CategoryLiquid}

var categoryLabels = map[Category]string{
	CategoryCigarette: "Электронные сигареты",
	CategoryVape:      "Вейпы",
	CategoryLiquid:    "Жидкости",
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the storefront display name of the category
func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory converts a raw value into a known category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Known flavor labels in display order
const (
	FlavorTobacco   = "Табак"
	FlavorBerries   = "Ягоды"
	FlavorMint      = "Мята"
	FlavorFruitMix  = "Фруктовый микс"
	FlavorMango     = "Манго"
	FlavorUniversal = "Универсальный"
)

// Flavors lists every known flavor label in display order
var Flavors = []string{FlavorTobacco, FlavorBerries, FlavorMint, FlavorFruitMix, FlavorMango, FlavorUniversal}

// ValidFlavor reports whether s is a known flavor label
func ValidFlavor(s string) bool {
	for _, f := range Flavors {
		if f == s {
			return true
		}
	}
	return false
}

// Product represents an item of the storefront catalog
type Product struct {
	ID       int64    `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	Price    int      `json:"price" yaml:"price"`
	Nicotine int      `json:"nicotine" yaml:"nicotine"`
	Flavor   string   `json:"flavor" yaml:"flavor"`
	Glyph    string   `json:"glyph" yaml:"glyph"`
	Featured bool     `json:"featured" yaml:"featured"`
}
