package cart

import "sync"

// Store hands out the ledger owned by each visitor session.  Ledgers live in
// memory only and die with the process: the cart itself is never persisted,
// only the one pending handoff selection is (see the handoff package).
type Store struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
}

// NewStore returns an empty session-to-ledger registry.
func NewStore() *Store {
	return &Store{ledgers: make(map[string]*Ledger)}
}

// Ledger returns the ledger for the session, creating an empty one on first
// use.
func (s *Store) Ledger(sessionID string) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[sessionID]
	if !ok {
		l = NewLedger()
		s.ledgers[sessionID] = l
	}
	return l
}
