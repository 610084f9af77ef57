package token

import "sync"

// Sink receives generated stylesheets. It models the single named
// style element the runtime owns in a host document: Apply with the
// same id replaces content (never appends a duplicate), Remove tears
// it down on unmount. Both must be idempotent.
type Sink interface {
	Apply(id, css string) error
	Remove(id string) error
}

// MemorySink is an in-process Sink, used by tests and by hosts that
// collect the stylesheet themselves (e.g. server-side rendering that
// inlines a <style> tag).
type MemorySink struct {
	mu   sync.Mutex
	byID map[string]string
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{byID: make(map[string]string)}
}

// Apply stores or replaces the stylesheet for id.
func (s *MemorySink) Apply(id, css string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = css
	return nil
}

// Remove deletes the stylesheet for id. Removing an absent id is a
// no-op.
func (s *MemorySink) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

// Get returns the stylesheet currently applied under id.
func (s *MemorySink) Get(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	css, ok := s.byID[id]
	return css, ok
}

// Len returns the number of applied stylesheets.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
