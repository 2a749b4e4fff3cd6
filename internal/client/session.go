package client

import (
	"fmt"
	"sync"
)

// State is the authentication state of the local session.
type State int

const (
	// StateUninitialized means the persisted slot has not been read yet.
	// No navigation decision may be made in this state.
	StateUninitialized State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "uninitialized"
	}
}

// Slot abstracts the persisted token store backing a Session.
type Slot interface {
	Load() (string, error)
	Store(token string) error
	Clear() error
}

// SessionOptions configures NewSession.
type SessionOptions struct {
	Slot Slot
	// LoginRoute is where an unauthenticated session is sent.
	// Defaults to "/login".
	LoginRoute string
	// LandingRoute is where an authenticated session landing on the
	// login route is sent. Defaults to "/products".
	LandingRoute string
}

// Session is the single client-side authority on whether the user is
// signed in. It starts uninitialized, reads the persisted slot exactly
// once, and then answers navigation questions from memory. All token
// mutations are serialized.
type Session struct {
	mu        sync.Mutex
	startOnce sync.Once
	slot      Slot
	state     State
	token     string

	loginRoute   string
	landingRoute string
}

func NewSession(opts SessionOptions) *Session {
	s := &Session{
		slot:         opts.Slot,
		state:        StateUninitialized,
		loginRoute:   opts.LoginRoute,
		landingRoute: opts.LandingRoute,
	}
	if s.loginRoute == "" {
		s.loginRoute = "/login"
	}
	if s.landingRoute == "" {
		s.landingRoute = "/products"
	}
	return s
}

// Start loads the persisted token and resolves the initial state.
// Calling Start again is a no-op; the slot is read only once per
// process lifetime.
func (s *Session) Start() error {
	var err error
	s.startOnce.Do(func() {
		var token string
		token, err = s.slot.Load()
		if err != nil {
			err = fmt.Errorf("load session: %w", err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.token = token
		if token == "" {
			s.state = StateUnauthenticated
		} else {
			s.state = StateAuthenticated
		}
	})
	return err
}

// State reports the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current token, or the empty string when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken replaces the session token. A non-empty token persists to
// the slot and moves the session to authenticated; an empty token
// clears the slot and moves it to unauthenticated. Setting a value the
// session already holds is a no-op and does not touch the slot.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized && token == s.token {
		return nil
	}

	if token == "" {
		if err := s.slot.Clear(); err != nil {
			return err
		}
		s.token = ""
		s.state = StateUnauthenticated
		return nil
	}

	if err := s.slot.Store(token); err != nil {
		return err
	}
	s.token = token
	s.state = StateAuthenticated
	return nil
}

// Decide applies the navigation policy to the route the user is on.
// It returns the route to redirect to and true when a redirect is
// required. Before Start has resolved the state, no decision is made.
func (s *Session) Decide(currentRoute string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateUnauthenticated:
		if currentRoute != s.loginRoute {
			return s.loginRoute, true
		}
	case StateAuthenticated:
		if currentRoute == s.loginRoute {
			return s.landingRoute, true
		}
	}
	return "", false
}

// LoginRoute reports the configured login route.
func (s *Session) LoginRoute() string { return s.loginRoute }

// LandingRoute reports the configured landing route.
func (s *Session) LandingRoute() string { return s.landingRoute }
