package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/vape-store/internal/models"
	"github.com/Lixing-Zhang/vape-store/internal/repository"
	"github.com/Lixing-Zhang/vape-store/internal/service"
	"github.com/Lixing-Zhang/vape-store/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newProductRouter() *chi.Mux {
	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	handler := NewProductHandler(svc, logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/product", handler.ListProducts)
	r.Get("/api/product/featured", handler.FeaturedProducts)
	r.Get("/api/product/{productId}", handler.GetProduct)
	r.Get("/api/filters", handler.FilterMetadata)
	return r
}

func TestListProducts(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 8 {
		t.Fatalf("expected 8 products, got %d", len(products))
	}

	// Catalog order is preserved
	for i, p := range products {
		if p.ID != int64(i+1) {
			t.Errorf("position %d: expected product ID %d, got %d", i, i+1, p.ID)
		}
	}
}

func TestFeaturedProducts(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/product/featured", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 3 {
		t.Fatalf("expected 3 featured products, got %d", len(products))
	}
	for _, p := range products {
		if !p.Featured {
			t.Errorf("product %d is not featured", p.ID)
		}
	}
}

func TestGetProduct_Success(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/product/3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.ID != 3 {
		t.Errorf("expected product ID 3, got %d", product.ID)
	}

	if product.Name != "Elf Bar BC5000" {
		t.Errorf("expected product name 'Elf Bar BC5000', got %s", product.Name)
	}

	if product.Price != 1190 {
		t.Errorf("expected product price 1190, got %d", product.Price)
	}

	if product.Flavor != "Ягоды" {
		t.Errorf("expected flavor 'Ягоды', got %s", product.Flavor)
	}

	if product.Category != models.CategoryVape {
		t.Errorf("expected product category 'vape', got %s", product.Category)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/product/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response["error"] != "Product not found" {
		t.Errorf("expected error message 'Product not found', got %s", response["error"])
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	r := newProductRouter()

	testCases := []struct {
		name string
		id   string
	}{
		{"letters", "invalid"},
		{"special chars", "abc@123"},
		{"float", "12.34"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/product/"+tc.id, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 for ID %s, got %d", tc.id, w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}

			if response["error"] != "Invalid ID supplied" {
				t.Errorf("expected error message 'Invalid ID supplied', got %s", response["error"])
			}
		})
	}
}

func TestGetProduct_MultipleProducts(t *testing.T) {
	r := newProductRouter()

	testCases := []struct {
		id         string
		expectedID int64
		name       string
		category   models.Category
	}{
		{"1", 1, "IQOS Iluma Prime", models.CategoryCigarette},
		{"4", 4, "Жидкость Fruitbae 30ml", models.CategoryLiquid},
		{"6", 6, "SMOK Nord 4", models.CategoryVape},
		{"8", 8, "Lost Mary BM5000", models.CategoryVape},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/product/"+tc.id, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}

			var product models.Product
			if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if product.ID != tc.expectedID {
				t.Errorf("expected product ID %d, got %d", tc.expectedID, product.ID)
			}

			if product.Name != tc.name {
				t.Errorf("expected product name '%s', got %s", tc.name, product.Name)
			}

			if product.Category != tc.category {
				t.Errorf("expected product category '%s', got %s", tc.category, product.Category)
			}
		})
	}
}

func TestFilterMetadata(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/filters", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var meta models.FilterMetadata
	if err := json.NewDecoder(w.Body).Decode(&meta); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(meta.Categories) != 3 || len(meta.Flavors) != 6 {
		t.Errorf("expected 3 categories and 6 flavors, got %d and %d", len(meta.Categories), len(meta.Flavors))
	}
	if meta.Price.Step != 100 || meta.Nicotine.Step != 5 {
		t.Errorf("unexpected slider steps: %+v %+v", meta.Price, meta.Nicotine)
	}
}
