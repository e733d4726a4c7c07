package console

import (
	"context"

	"github.com/gopalindians/framework/input"
	"github.com/gopalindians/framework/output"
)

// Command is a unit of work the console can resolve and run. A command
// declares its own input schema once at registration; Run is invoked only
// after the full token vector parsed cleanly against the merged schema.
type Command interface {
	Name() string
	Description() string
	Definition() *input.Definition
	Run(ctx context.Context, in *input.Input, out *output.Output) error
}

// Func adapts a plain function into a Command.
type Func struct {
	CommandName string
	Summary     string
	Schema      *input.Definition
	Action      func(ctx context.Context, in *input.Input, out *output.Output) error
}

func (f *Func) Name() string        { return f.CommandName }
func (f *Func) Description() string { return f.Summary }

func (f *Func) Definition() *input.Definition {
	if f.Schema == nil {
		f.Schema = input.NewDefinition()
	}
	return f.Schema
}

func (f *Func) Run(ctx context.Context, in *input.Input, out *output.Output) error {
	if f.Action == nil {
		return nil
	}
	return f.Action(ctx, in, out)
}
