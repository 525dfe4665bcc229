package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/vape-store/internal/filter"
	"github.com/Lixing-Zhang/vape-store/internal/models"
	"github.com/Lixing-Zhang/vape-store/internal/session"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidFlavor   = errors.New("invalid flavor")
	ErrInvalidSection  = errors.New("invalid section")
	ErrInvalidRange    = errors.New("range minimum exceeds maximum")
	ErrInvalidProduct  = errors.New("invalid product")
)

// ProductRepository interface for product lookups
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// SessionService applies visitor actions to their filter session.
// Input is validated here so the engine only ever sees known categories and flavors.
type SessionService struct {
	productRepo ProductRepository
	store       *session.Store
}

// NewSessionService creates a new session service
func NewSessionService(productRepo ProductRepository, store *session.Store) *SessionService {
	return &SessionService{
		productRepo: productRepo,
		store:       store,
	}
}

// CreateSession starts a session in the default state
func (s *SessionService) CreateSession() (session.View, error) {
	sess, err := s.store.Create()
	if err != nil {
		return session.View{}, err
	}
	return sess.View(), nil
}

// GetSession returns the current view of a session
func (s *SessionService) GetSession(id string) (session.View, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.View{}, err
	}
	return sess.View(), nil
}

// EndSession discards a session
func (s *SessionService) EndSession(id string) error {
	return s.store.Delete(id)
}

// VisibleProducts returns the products matching a session's filters
func (s *SessionService) VisibleProducts(id string) ([]models.Product, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.VisibleProducts(), nil
}

// SetSection switches the active navigation section
func (s *SessionService) SetSection(id, raw string) (session.View, error) {
	section, err := models.ParseSection(raw)
	if err != nil {
		return session.View{}, fmt.Errorf("%w: %v", ErrInvalidSection, err)
	}
	sess, err := s.store.Get(id)
	if err != nil {
		return session.View{}, err
	}
	sess.SetSection(section)
	return sess.View(), nil
}

// SetCategory includes or excludes a category
func (s *SessionService) SetCategory(id, raw string, included bool) (session.View, error) {
	category, err := models.ParseCategory(raw)
	if err != nil {
		return session.View{}, fmt.Errorf("%w: %v", ErrInvalidCategory, err)
	}
	return s.update(id, func(e *filter.Engine) {
		e.SetCategorySelected(category, included)
	})
}

// SetFlavor includes or excludes a flavor
func (s *SessionService) SetFlavor(id, flavor string, included bool) (session.View, error) {
	if !models.ValidFlavor(flavor) {
		return session.View{}, fmt.Errorf("%w: unknown flavor %q", ErrInvalidFlavor, flavor)
	}
	return s.update(id, func(e *filter.Engine) {
		e.SetFlavorSelected(flavor, included)
	})
}

// SetPriceRange replaces the price interval. Values outside the slider domain are kept as given.
func (s *SessionService) SetPriceRange(id string, min, max int) (session.View, error) {
	if min > max {
		return session.View{}, ErrInvalidRange
	}
	return s.update(id, func(e *filter.Engine) {
		e.SetPriceRange(min, max)
	})
}

// SetNicotineRange replaces the nicotine interval. Values outside the slider domain are kept as given.
func (s *SessionService) SetNicotineRange(id string, min, max int) (session.View, error) {
	if min > max {
		return session.View{}, ErrInvalidRange
	}
	return s.update(id, func(e *filter.Engine) {
		e.SetNicotineRange(min, max)
	})
}

// ResetFilters restores the default filters, keeping the cart
func (s *SessionService) ResetFilters(id string) (session.View, error) {
	return s.update(id, func(e *filter.Engine) {
		e.ResetFilters()
	})
}

// AddToCart checks that the product exists and bumps the session's cart counter
func (s *SessionService) AddToCart(ctx context.Context, id string, productID int64) (session.View, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.View{}, err
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return session.View{}, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	sess.Update(func(e *filter.Engine) {
		e.IncrementCart()
	})
	return sess.View(), nil
}

// Stats reports store usage
func (s *SessionService) Stats() session.Stats {
	return s.store.Stats()
}

func (s *SessionService) update(id string, fn func(e *filter.Engine)) (session.View, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.View{}, err
	}
	sess.Update(fn)
	return sess.View(), nil
}
