package navigation

import (
	"sync"

	"github.com/dtroode/scheduleapp/internal/model"
)

var _ model.Navigator = (*Router)(nil)

// Router is an in-memory history stack.
type Router struct {
	mu        sync.Mutex
	stack     []model.ScreenPath
	listeners map[uint64]func(model.ScreenPath)
	nextID    uint64
}

// NewRouter creates a Router positioned at initial.
func NewRouter(initial model.ScreenPath) *Router {
	return &Router{
		stack:     []model.ScreenPath{initial},
		listeners: make(map[uint64]func(model.ScreenPath)),
	}
}

// Location returns the top of the history stack.
func (r *Router) Location() model.ScreenPath {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack[len(r.stack)-1]
}

// Push adds path on top of the history.
func (r *Router) Push(path model.ScreenPath) {
	r.mu.Lock()
	r.stack = append(r.stack, path)
	r.mu.Unlock()

	r.notify(path)
}

// Replace swaps the top entry, so Back never returns to it.
func (r *Router) Replace(path model.ScreenPath) {
	r.mu.Lock()
	r.stack[len(r.stack)-1] = path
	r.mu.Unlock()

	r.notify(path)
}

// Back pops the top entry. It reports false when there is nowhere to go.
func (r *Router) Back() bool {
	r.mu.Lock()
	if len(r.stack) == 1 {
		r.mu.Unlock()
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	path := r.stack[len(r.stack)-1]
	r.mu.Unlock()

	r.notify(path)
	return true
}

// History returns a copy of the stack, oldest first.
func (r *Router) History() []model.ScreenPath {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.ScreenPath(nil), r.stack...)
}

// Subscribe registers fn for location changes.
func (r *Router) Subscribe(fn func(model.ScreenPath)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.listeners[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

func (r *Router) notify(path model.ScreenPath) {
	r.mu.Lock()
	fns := make([]func(model.ScreenPath), 0, len(r.listeners))
	for id := uint64(1); id <= r.nextID; id++ {
		if fn, ok := r.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(path)
	}
}
