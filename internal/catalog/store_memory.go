package catalog

import (
	"sort"
	"sync"
)

// MemStore keeps the catalog in memory. Ids start at 1, grow strictly and
// are never handed out twice, even after a delete.
type MemStore struct {
	mu     sync.RWMutex
	m      map[int]Book
	nextID int
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[int]Book{}, nextID: 1}
}

func (s *MemStore) Add(title, author, content string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.m[id] = NewBook(title, author, content)
	s.nextID++
	return id
}

// List returns entries in insertion order, which is id order.
func (s *MemStore) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.m))
	for id, b := range s.m {
		out = append(out, Entry{ID: id, Book: b})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) Get(id int) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.m[id]
	return b, ok
}

// Update replaces title, author and content. Availability is kept.
func (s *MemStore) Update(id int, title, author, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.m[id]
	if !ok {
		return false
	}
	s.m[id] = NewBook(title, author, content).withAvailability(old.available)
	return true
}

func (s *MemStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		return false
	}
	delete(s.m, id)
	return true
}

func (s *MemStore) SetAvailability(id int, available bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.m[id]
	if !ok {
		return false
	}
	s.m[id] = b.withAvailability(available)
	return true
}

func (s *MemStore) Purchase(id int) error {
	return s.transition(id, true, ErrAlreadyOwned)
}

func (s *MemStore) Return(id int) error {
	return s.transition(id, false, ErrNotOwned)
}

// transition flips availability when the book is currently in state from,
// and reports errWrongState otherwise.
func (s *MemStore) transition(id int, from bool, errWrongState error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.m[id]
	if !ok {
		return ErrNotFound
	}
	if b.available != from {
		return errWrongState
	}
	s.m[id] = b.withAvailability(!from)
	return nil
}

// Read hands out the book only once it has been purchased.
func (s *MemStore) Read(id int) (Book, error) {
	b, ok := s.Get(id)
	if !ok {
		return Book{}, ErrNotFound
	}
	if b.available {
		return Book{}, ErrNotPurchased
	}
	return b, nil
}

func (s *MemStore) Stats() (total, owned int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.m {
		if !b.available {
			owned++
		}
	}
	return len(s.m), owned
}
