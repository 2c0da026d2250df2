package catalog

import "sync"

// Session tracks the current query for one collection, like a list page does
// while the user types and picks filters. Each query change gets a generation
// number; results computed for an older generation are dropped on Publish so
// that only the latest query's result is ever visible.
type Session[T any] struct {
	items  []T
	schema Schema[T]

	mu        sync.Mutex
	query     Query
	gen       uint64
	result    []T
	resultGen uint64
}

// NewSession starts a session with the unrestricted query already evaluated.
func NewSession[T any](items []T, schema Schema[T]) *Session[T] {
	s := &Session[T]{items: items, schema: schema}
	s.result = Apply(items, schema, s.query)
	return s
}

// Query returns the current query parameters.
func (s *Session[T]) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Begin installs a new query derived from the current one and returns its
// generation. The caller evaluates it (possibly on another goroutine) and
// hands the result to Publish.
func (s *Session[T]) Begin(change func(Query) Query) (uint64, Query) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = change(s.query)
	s.gen++
	return s.gen, s.query
}

// Evaluate runs q against the session's collection without touching session
// state.
func (s *Session[T]) Evaluate(q Query) []T {
	return Apply(s.items, s.schema, q)
}

// Publish stores result if gen is still the latest generation. It reports
// whether the result was kept.
func (s *Session[T]) Publish(gen uint64, result []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || gen < s.resultGen {
		return false
	}
	s.result = result
	s.resultGen = gen
	return true
}

// Update changes the query and re-evaluates synchronously. The returned flag
// is false when a newer Update raced ahead and superseded this one.
func (s *Session[T]) Update(change func(Query) Query) ([]T, bool) {
	gen, q := s.Begin(change)
	result := s.Evaluate(q)
	return result, s.Publish(gen, result)
}

// Result returns the latest published result and its generation.
func (s *Session[T]) Result() ([]T, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.resultGen
}
