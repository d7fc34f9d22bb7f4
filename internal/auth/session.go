package auth

import (
	"context"
	"sync"
)

// State is the lifecycle of a Session: uninitialized until the first
// provider result arrives, subscribed afterwards. Once subscribed the
// snapshot reports whether an identity is present.
type State int

const (
	StateUninitialized State = iota
	StateSubscribed
)

// Snapshot is a point-in-time read of the session. Identity is only
// meaningful when Present is true.
type Snapshot struct {
	State    State
	Present  bool
	Identity Identity
}

// Session is the single process-wide holder of the authenticated identity.
// All mutation goes through the provider-backed operations; consumers call
// Snapshot.
type Session struct {
	provider Provider

	mu        sync.Mutex
	state     State
	present   bool
	identity  Identity
	listeners map[int]func(Snapshot)
	nextID    int
}

// NewSession returns an uninitialized session backed by the given provider.
func NewSession(p Provider) *Session {
	return &Session{provider: p, listeners: make(map[int]func(Snapshot))}
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{State: s.state, Present: s.present, Identity: s.identity}
}

// Subscribe registers a listener for identity changes and returns an
// unsubscribe function. A listener that has unsubscribed is never called
// again, even if a change was already in flight.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Session) set(present bool, ident Identity) {
	s.mu.Lock()
	s.state = StateSubscribed
	s.present = present
	s.identity = ident
	snap := Snapshot{State: s.state, Present: s.present, Identity: s.identity}
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// SignIn authenticates with the provider and, on success, publishes the
// identity to the session.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	ident, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	s.set(true, ident)
	return nil
}

// SignUp creates an account with the provider and publishes the new
// identity to the session.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	ident, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	s.set(true, ident)
	return nil
}

// SendPasswordReset asks the provider to email a reset link. The session
// state is unchanged.
func (s *Session) SendPasswordReset(ctx context.Context, email string) error {
	return s.provider.SendPasswordReset(ctx, email)
}

// SignOut clears the identity. The session stays subscribed with no
// identity present.
func (s *Session) SignOut() {
	s.set(false, Identity{})
}

// Identity returns the current identity and whether one is present.
func (s *Session) Identity() (Identity, bool) {
	snap := s.Snapshot()
	return snap.Identity, snap.Present
}
