package view

import (
	"context"
	"sync"
)

// Generation identifies one load started by a Session.
type Generation uint64

// Session drives one viewer through its states. Every Start begins a new
// generation and cancels the previous one; results for any generation other
// than the current one are discarded, so a slow answer for an old route
// parameter can never overwrite the view of a newer one.
type Session[T any] struct {
	mu          sync.Mutex
	gen         Generation
	cancel      context.CancelFunc
	state       State[T]
	failMessage string
}

// NewSession creates a session in the loading state. failMessage is what the
// viewer shows when a load fails.
func NewSession[T any](failMessage string) *Session[T] {
	return &Session[T]{
		state:       Loading[T](),
		failMessage: failMessage,
	}
}

// Start enters loading for a new generation. The returned context is
// cancelled when the generation is superseded, resolved or the session closed.
func (s *Session[T]) Start(parent context.Context) (context.Context, Generation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.startLocked(parent)
}

// Retry restarts the load only when the session is failed.
func (s *Session[T]) Retry(parent context.Context) (context.Context, Generation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CanRetry() {
		return nil, s.gen, false
	}

	ctx, gen := s.startLocked(parent)

	return ctx, gen, true
}

func (s *Session[T]) startLocked(parent context.Context) (context.Context, Generation) {
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	s.gen++
	s.cancel = cancel
	s.state = Loading[T]()

	return ctx, s.gen
}

// Resolve applies the result of generation gen. It returns false, leaving the
// state untouched, when gen is no longer current.
func (s *Session[T]) Resolve(gen Generation, data T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || !s.state.IsLoading() {
		return false
	}

	if err != nil {
		s.state = Failed[T](s.failMessage, err)
	} else {
		s.state = Ready(data)
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	return true
}

// Load runs fn as a fresh generation and returns the state it produced. If a
// newer generation started meanwhile, the newer state is returned instead.
func (s *Session[T]) Load(parent context.Context, fn func(context.Context) (T, error)) State[T] {
	ctx, gen := s.Start(parent)
	data, err := fn(ctx)
	s.Resolve(gen, data, err)

	return s.State()
}

func (s *Session[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session[T]) Generation() Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen
}

// Current reports whether gen is the latest generation.
func (s *Session[T]) Current(gen Generation) bool {
	return s.Generation() == gen
}

// Close cancels any in-flight load. Later results are discarded.
func (s *Session[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}
