// Package session holds the app-wide authentication state: who is signed in
// and whether that is known yet. The Store is fed by the auth gateway and
// observed by the navigation gate and feature services.
package session

import (
	"context"
	"sync"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

var _ model.IdentitySource = (*Store)(nil)

// State is a snapshot of the store.
type State struct {
	Identity *model.Identity
	Session  *model.Session
	Loading  bool
}

// Authenticated reports whether an identity is present.
func (s State) Authenticated() bool {
	return s.Identity != nil
}

// Listener receives the state after every change.
type Listener func(State)

// Store tracks the current identity.
type Store struct {
	gateway model.AuthGateway
	logger  *logger.Logger

	mu         sync.Mutex
	state      State
	subscribed bool
	sub        model.Subscription
	listeners  map[uint64]Listener
	order      []uint64
	nextID     uint64

	// notifyMu keeps listeners seeing writes in the order they happened.
	notifyMu sync.Mutex
}

// New creates a Store in the loading state.
func New(gateway model.AuthGateway, logger *logger.Logger) *Store {
	return &Store{
		gateway:   gateway,
		logger:    logger,
		state:     State{Loading: true},
		listeners: make(map[uint64]Listener),
	}
}

// Initialize subscribes to gateway changes once and fetches the current
// session. Repeated calls only refetch. Fetch failures leave the store
// unauthenticated; Initialize itself never fails.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	first := !s.subscribed
	s.subscribed = true
	s.mu.Unlock()

	if first {
		sub := s.gateway.OnAuthStateChange(s.handleChange)
		s.mu.Lock()
		s.sub = sub
		s.mu.Unlock()
		s.logger.Debug("Session store: subscribed to auth changes")
	}

	sess, err := s.gateway.GetSession(ctx)
	if err != nil {
		s.logger.Warn("Session store: failed to fetch session, treating as signed out",
			"error", err.Error())
		s.write(nil)
		return
	}

	s.write(sess)

	if sess != nil {
		s.logger.Debug("Session store: session restored", "user_id", sess.User.ID)
	}
}

func (s *Store) handleChange(event model.AuthEvent, sess *model.Session) {
	s.logger.Debug("Session store: auth change", "event", string(event))
	s.write(sess)
}

// write replaces identity and session together and clears loading.
func (s *Store) write(sess *model.Session) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if sess == nil {
		s.state = State{}
	} else {
		cp := *sess
		identity := cp.User
		s.state = State{Identity: &identity, Session: &cp}
	}
	snapshot := s.state
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// SignOut asks the gateway to end the session. Local state is cleared by the
// resulting change notification, so CurrentUser may still report the old
// identity right after SignOut returns.
func (s *Store) SignOut(ctx context.Context) {
	if err := s.gateway.SignOut(ctx); err != nil {
		s.logger.Error("Session store: sign out failed", "error", err.Error())
		return
	}
	s.logger.Info("Session store: signed out")
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the signed in identity.
func (s *Store) CurrentUser() (model.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Identity == nil {
		return model.Identity{}, false
	}
	return *s.state.Identity, true
}

// Subscribe registers l for future changes and returns a cancel func.
func (s *Store) Subscribe(l Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners[id] = l
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// must be called with s.mu held
func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listeners[id])
	}
	return out
}

// Close unsubscribes from the gateway and drops all listeners.
func (s *Store) Close() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.listeners = make(map[uint64]Listener)
	s.order = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}
