package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store maps browsing sessions to carts. Carts are created lazily on first
// mutation and exist only in memory; a restart empties every cart, which is
// the intended lifecycle.
type Store struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[uuid.UUID]*Cart)}
}

// With runs fn against the session's cart under the store lock. Each mutation
// runs to completion before the next one touches the same cart.
func (s *Store) With(session uuid.UUID, fn func(c *Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[session]
	if !ok {
		c = New()
		s.carts[session] = c
	}
	fn(c)
}

// Drop discards the session's cart entirely, used after order handoff.
func (s *Store) Drop(session uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}
