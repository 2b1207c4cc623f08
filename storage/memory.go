package storage

import (
	"context"
	"sync"
)

// Memory is the volatile [Store]: a mutex-guarded map whose contents
// live exactly as long as the process, the way sessionStorage lives
// exactly as long as the browsing context. In-flight OTP challenges are
// kept here so a restart surfaces as an expired challenge, not stale
// auth state.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty volatile store.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

// Get fetches a value. Absent keys return ("", false, nil).
func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores a value.
func (s *Memory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes a key. Removing an absent key is not an error.
func (s *Memory) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
