package controller

import (
	"sync"

	"github.com/google/uuid"
)

// maxExchanges bounds how many assistant sessions are remembered at once.
// The oldest is dropped first.
const maxExchanges = 1024

type exchange struct {
	Question string
	Answer   string
	Error    string
}

// exchangeStore keeps the last question and answer per browser session in
// memory. Only the key travels in the cookie, since answers can be larger
// than a cookie may hold.
type exchangeStore struct {
	mu    sync.Mutex
	items map[string]exchange
	order []string
	limit int
}

func newExchangeStore(limit int) *exchangeStore {
	return &exchangeStore{items: make(map[string]exchange), limit: limit}
}

// put stores ex under key, minting a new key when key is empty or unknown.
func (s *exchangeStore) put(key string, ex exchange) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		key = uuid.NewString()
		s.order = append(s.order, key)
		for len(s.order) > s.limit {
			delete(s.items, s.order[0])
			s.order = s.order[1:]
		}
	}
	s.items[key] = ex
	return key
}

func (s *exchangeStore) get(key string) (exchange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.items[key]
	return ex, ok
}
