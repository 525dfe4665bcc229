package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/vape-store/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository over the fixed storefront catalog.
// Products are kept in catalog order; GetAll always returns them in that order.
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[int64]int
}

// NewInMemoryProductRepository creates a new in-memory product repository with the storefront catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepositoryFrom(Catalog())
}

// NewInMemoryProductRepositoryFrom creates a repository over the given products, keeping their order
func NewInMemoryProductRepositoryFrom(products []models.Product) *InMemoryProductRepository {
	r := &InMemoryProductRepository{
		products: make([]models.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

// Catalog returns a fresh copy of the storefront catalog
func Catalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "IQOS Iluma Prime", Category: models.CategoryCigarette, Price: 4990, Nicotine: 0, Flavor: models.FlavorTobacco, Glyph: "🔥", Featured: true},
		{ID: 2, Name: "VAPORESSO XROS 3", Category: models.CategoryVape, Price: 2490, Nicotine: 0, Flavor: models.FlavorUniversal, Glyph: "💨", Featured: true},
		{ID: 3, Name: "Elf Bar BC5000", Category: models.CategoryVape, Price: 1190, Nicotine: 50, Flavor: models.FlavorBerries, Glyph: "⚡", Featured: true},
		{ID: 4, Name: "Жидкость Fruitbae 30ml", Category: models.CategoryLiquid, Price: 590, Nicotine: 35, Flavor: models.FlavorFruitMix, Glyph: "🍓"},
		{ID: 5, Name: "GLO Hyper X2", Category: models.CategoryCigarette, Price: 3490, Nicotine: 0, Flavor: models.FlavorTobacco, Glyph: "🔥"},
		{ID: 6, Name: "SMOK Nord 4", Category: models.CategoryVape, Price: 2190, Nicotine: 0, Flavor: models.FlavorUniversal, Glyph: "💨"},
		{ID: 7, Name: "Жидкость Salt 30ml", Category: models.CategoryLiquid, Price: 490, Nicotine: 20, Flavor: models.FlavorMint, Glyph: "🌿"},
		{ID: 8, Name: "Lost Mary BM5000", Category: models.CategoryVape, Price: 1290, Nicotine: 50, Flavor: models.FlavorMango, Glyph: "🥭"},
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}
