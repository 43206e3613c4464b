package notifications

import (
	"sort"
	"sync"
)

// UnreadStore holds the unread notification count shown in the badge.
// Only a Feed writes to it: mark-all-read and the count fetch.
type UnreadStore struct {
	mu          sync.RWMutex
	value       int
	nextID      int
	subscribers map[int]func(int)
}

func NewUnreadStore() *UnreadStore {
	return &UnreadStore{subscribers: make(map[int]func(int))}
}

func (s *UnreadStore) Value() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Subscribe registers fn to be called with every new value. The returned
// func removes the subscription.
func (s *UnreadStore) Subscribe(fn func(int)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *UnreadStore) set(value int) {
	if value < 0 {
		value = 0
	}

	s.mu.Lock()
	s.value = value
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subscribers := make([]func(int), 0, len(ids))
	for _, id := range ids {
		subscribers = append(subscribers, s.subscribers[id])
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(value)
	}
}
