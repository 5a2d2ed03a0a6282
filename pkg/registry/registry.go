// Package registry binds resolved commands to host-side handler functions.
// The core resolves a line to a Run action; the registry is how a host maps
// that action onto actual behavior.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/espalier/pkg/domain"
)

// ErrNotBound is returned when a Run action reaches a command no handler was
// registered for.
var ErrNotBound = errors.New("command not bound")

// HandlerFunc is the signature of a command implementation. It receives the
// parameter groups bound during tokenization, in input order.
type HandlerFunc func(ctx context.Context, values []domain.ParameterValue) error

// Registry maps commands to their handlers. Keys are the command nodes
// themselves: the host registers against the same tree it gave the parser,
// so name collisions across branches cannot mis-route.
type Registry struct {
	mu       sync.RWMutex
	handlers map[*domain.Command]HandlerFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[*domain.Command]HandlerFunc),
	}
}

// Register binds a handler to a command. An existing binding is overwritten.
func (r *Registry) Register(cmd *domain.Command, fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[cmd] = fn
}

// Bound reports whether the command has a handler.
func (r *Registry) Bound(cmd *domain.Command) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[cmd]
	return ok
}

// Dispatch runs the handler bound to the command.
func (r *Registry) Dispatch(ctx context.Context, cmd *domain.Command, values []domain.ParameterValue) error {
	r.mu.RLock()
	fn, ok := r.handlers[cmd]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotBound, cmd.Name())
	}

	return fn(ctx, values)
}
