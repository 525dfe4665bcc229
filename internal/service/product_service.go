package service

import (
	"context"

	"github.com/Lixing-Zhang/vape-store/internal/filter"
	"github.com/Lixing-Zhang/vape-store/internal/models"
	"github.com/Lixing-Zhang/vape-store/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all products in catalog order
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// FeaturedProducts returns the products highlighted on the home page
func (s *ProductService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Featured(products), nil
}

// FilterMetadata returns the filter options offered by the catalog page
func (s *ProductService) FilterMetadata() models.FilterMetadata {
	return models.NewFilterMetadata()
}
