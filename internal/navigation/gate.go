package navigation

import (
	"sync"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/session"
)

// Status is the authentication status as seen by the gate.
type Status int

const (
	// Undetermined means the session has not been resolved yet.
	Undetermined Status = iota
	Unauthenticated
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Undetermined:
		return "undetermined"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// StatusOf derives the gate status from a store snapshot.
func StatusOf(st session.State) Status {
	switch {
	case st.Loading:
		return Undetermined
	case st.Authenticated():
		return Authenticated
	default:
		return Unauthenticated
	}
}

// Decision is the outcome of Evaluate.
type Decision struct {
	// Wait is set while the status is undetermined; a waiting indicator is shown.
	Wait bool
	// Redirect is the screen to replace the current one with, empty for none.
	Redirect model.ScreenPath
}

// Evaluate decides where a user with the given status may be.
func Evaluate(status Status, location model.ScreenPath) Decision {
	inAuth := InAuthGroup(location)

	switch {
	case status == Undetermined:
		return Decision{Wait: true}
	case status == Unauthenticated && !inAuth:
		return Decision{Redirect: SignIn}
	case status == Authenticated && inAuth:
		return Decision{Redirect: Landing}
	}
	return Decision{}
}

// StateSource is the part of the session store the gate observes.
type StateSource interface {
	State() session.State
	Subscribe(l session.Listener) (cancel func())
}

// LocationSource is a navigator whose location changes can be observed.
type LocationSource interface {
	model.Navigator
	Subscribe(fn func(model.ScreenPath)) (cancel func())
}

// Gate keeps the navigator's location consistent with the session state.
type Gate struct {
	store  StateSource
	nav    LocationSource
	logger *logger.Logger

	mu      sync.Mutex
	status  Status
	cancels []func()
	running bool
	dirty   bool
}

// NewGate creates a Gate. Call Start to begin observing.
func NewGate(store StateSource, nav LocationSource, logger *logger.Logger) *Gate {
	return &Gate{
		store:  store,
		nav:    nav,
		logger: logger,
	}
}

// Start subscribes to store and location changes and evaluates once.
func (g *Gate) Start() {
	cancelStore := g.store.Subscribe(func(session.State) { g.run() })
	cancelNav := g.nav.Subscribe(func(model.ScreenPath) { g.run() })

	g.mu.Lock()
	g.cancels = append(g.cancels, cancelStore, cancelNav)
	g.mu.Unlock()

	g.run()
}

// Stop unsubscribes from both sources.
func (g *Gate) Stop() {
	g.mu.Lock()
	cancels := g.cancels
	g.cancels = nil
	g.mu.Unlock()

	for _, c := range cancels {
		c()
	}
}

// Status returns the status used by the last evaluation.
func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// run evaluates until no change arrived meanwhile. Changes that arrive during
// an evaluation, including the one caused by our own Replace, only mark the
// gate dirty.
func (g *Gate) run() {
	g.mu.Lock()
	if g.running {
		g.dirty = true
		g.mu.Unlock()
		return
	}
	g.running = true
	g.mu.Unlock()

	for {
		status := StatusOf(g.store.State())

		g.mu.Lock()
		g.status = status
		g.mu.Unlock()

		g.apply(status)

		g.mu.Lock()
		if !g.dirty {
			g.running = false
			g.mu.Unlock()
			return
		}
		g.dirty = false
		g.mu.Unlock()
	}
}

func (g *Gate) apply(status Status) {
	location := g.nav.Location()
	d := Evaluate(status, location)
	if d.Redirect == "" || d.Redirect == location {
		return
	}

	g.logger.Debug("Navigation gate: redirecting",
		"status", status.String(),
		"from", string(location),
		"to", string(d.Redirect))

	g.nav.Replace(d.Redirect)
}
