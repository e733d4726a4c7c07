package spec

import (
	"context"
	"fmt"

	"github.com/gopalindians/framework/input"
	"github.com/gopalindians/framework/output"
)

// Context wraps one command invocation for a handler.
type Context struct {
	Context context.Context
	Command Command
	Input   *input.Input
	Output  *output.Output
	Deps    Dependencies
}

// Handler executes a command declared in the manifest.
type Handler func(ctx Context) error

// Registry maps command IDs to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler for a command ID.
func (r *Registry) Register(id string, handler Handler) {
	if r == nil || id == "" || handler == nil {
		return
	}
	r.handlers[id] = handler
}

// HandlerFor returns the handler for a command ID.
func (r *Registry) HandlerFor(id string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.handlers[id]
	return h, ok
}

// EnsureHandlers verifies that every manifest command has a handler.
func (r *Registry) EnsureHandlers(manifest *Manifest) error {
	if r == nil || manifest == nil {
		return nil
	}
	for _, cmd := range manifest.Commands {
		if _, ok := r.handlers[cmd.EffectiveID()]; !ok {
			return missingHandlerError(cmd.EffectiveID())
		}
	}
	return nil
}

type missingHandlerError string

func (e missingHandlerError) Error() string {
	return fmt.Sprintf("missing handler for command %s", string(e))
}
