// Package session keeps one filter engine per storefront visitor.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Lixing-Zhang/vape-store/internal/filter"
	"github.com/Lixing-Zhang/vape-store/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

// Session is a single visitor's storefront state
type Session struct {
	ID string

	mu       sync.Mutex
	engine   *filter.Engine
	section  models.Section
	lastSeen time.Time
}

// View is a consistent read of a session
type View struct {
	ID       string           `json:"id"`
	Section  models.Section   `json:"section"`
	Filters  filter.Snapshot  `json:"filters"`
	Products []models.Product `json:"products"`
	Featured []models.Product `json:"featured"`
}

// Update runs fn with exclusive access to the session's engine
func (s *Session) Update(fn func(e *filter.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// SetSection switches the active navigation section
func (s *Session) SetSection(section models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = section
}

// View returns the session's current state together with the products it selects
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ID:       s.ID,
		Section:  s.section,
		Filters:  s.engine.State().Snapshot(),
		Products: s.engine.VisibleProducts(),
		Featured: s.engine.FeaturedProducts(),
	}
}

// VisibleProducts returns the products matching the session's filters
func (s *Session) VisibleProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.VisibleProducts()
}

func (s *Session) cartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CartCount()
}

// Stats summarizes the store
type Stats struct {
	ActiveSessions int `json:"active_sessions"`
	MaxSessions    int `json:"max_sessions"`
	CartItems      int `json:"cart_items"`
}

// Store holds sessions in memory and expires them after an idle TTL
type Store struct {
	catalog     []models.Product
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a session store over catalog.
// A ttl of zero disables expiry; maxSessions of zero disables the limit.
func NewStore(catalog []models.Product, ttl time.Duration, maxSessions int) *Store {
	c := make([]models.Product, len(catalog))
	copy(c, catalog)
	return &Store{
		catalog:     c,
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

// Create starts a new session in the default state
func (st *Store) Create() (*Session, error) {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.maxSessions > 0 && len(st.sessions) >= st.maxSessions {
		st.sweepLocked(now)
		if len(st.sessions) >= st.maxSessions {
			return nil, ErrTooManySessions
		}
	}

	s := &Session{
		ID:       uuid.New().String(),
		engine:   filter.NewEngine(st.catalog),
		section:  models.SectionHome,
		lastSeen: now,
	}
	st.sessions[s.ID] = s
	return s, nil
}

// Get returns a live session and marks it as seen
func (st *Store) Get(id string) (*Session, error) {
	now := st.now()

	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st.expired(s, now) {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = now
	return s, nil
}

// Delete ends a session
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Sweep removes sessions idle for longer than the TTL and returns how many were removed
func (st *Store) Sweep() int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sweepLocked(now)
}

func (st *Store) sweepLocked(now time.Time) int {
	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := st.expired(s, now)
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// expired requires s.mu to be held
func (st *Store) expired(s *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.lastSeen) > st.ttl
}

// Stats reports the number of sessions and items added to carts across them
func (st *Store) Stats() Stats {
	st.mu.RLock()
	defer st.mu.RUnlock()

	stats := Stats{
		ActiveSessions: len(st.sessions),
		MaxSessions:    st.maxSessions,
	}
	for _, s := range st.sessions {
		stats.CartItems += s.cartCount()
	}
	return stats
}
