package spec

import (
	"context"
	"fmt"

	"github.com/gopalindians/framework/console"
	"github.com/gopalindians/framework/input"
	"github.com/gopalindians/framework/output"
)

// Build turns a manifest and a handler registry into a wired console. Every
// manifest command must have a handler registered under its ID.
func Build(manifest *Manifest, deps Dependencies, reg *Registry) (*console.Console, error) {
	if manifest == nil {
		return nil, fmt.Errorf("manifest is nil")
	}
	if reg == nil {
		return nil, fmt.Errorf("registry is nil")
	}
	if err := reg.EnsureHandlers(manifest); err != nil {
		return nil, err
	}

	out := output.New(deps.Stdout, deps.Stderr)
	c := console.New(manifest.App.Name, deps.Version,
		console.WithSummary(manifest.App.Summary),
		console.WithOutput(out),
	)
	for _, f := range manifest.GlobalFlags {
		c.AddGlobalFlag(buildFlag(f))
	}
	for _, o := range manifest.GlobalOptions {
		c.AddGlobalOption(buildOption(o))
	}
	for _, cmdSpec := range manifest.Commands {
		cmd, err := buildCommand(cmdSpec, deps, reg)
		if err != nil {
			return nil, err
		}
		if err := c.Add(cmd); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func buildCommand(cmdSpec Command, deps Dependencies, reg *Registry) (console.Command, error) {
	def := input.NewDefinition()
	for _, f := range cmdSpec.Flags {
		if err := def.AddFlag(buildFlag(f)); err != nil {
			return nil, fmt.Errorf("command %s: %w", cmdSpec.EffectiveID(), err)
		}
	}
	for _, o := range cmdSpec.Options {
		if err := def.AddOption(buildOption(o)); err != nil {
			return nil, fmt.Errorf("command %s: %w", cmdSpec.EffectiveID(), err)
		}
	}
	for _, a := range cmdSpec.Args {
		if err := def.AddArgument(buildArgument(a)); err != nil {
			return nil, fmt.Errorf("command %s: %w", cmdSpec.EffectiveID(), err)
		}
	}
	handler, _ := reg.HandlerFor(cmdSpec.EffectiveID())
	return &console.Func{
		CommandName: cmdSpec.Name,
		Summary:     cmdSpec.Summary,
		Schema:      def,
		Action: func(ctx context.Context, in *input.Input, out *output.Output) error {
			return handler(Context{
				Context: ctx,
				Command: cmdSpec,
				Input:   in,
				Output:  out,
				Deps:    deps,
			})
		},
	}, nil
}

func buildFlag(f Flag) *input.Flag {
	flag := input.NewFlag(f.Name, f.Description).WithAlias(f.Alias)
	if f.Stackable {
		flag.AsStackable()
	}
	return flag
}

func buildOption(o Option) *input.Option {
	option := input.NewOption(o.Name, o.Description).WithAlias(o.Alias)
	if o.Required {
		option.AsRequired()
	}
	if o.Default != nil {
		option.WithDefault(*o.Default)
	}
	return option
}

func buildArgument(a Arg) *input.Argument {
	arg := input.NewArgument(a.Name, a.Description)
	if a.Required {
		arg.AsRequired()
	}
	if a.Variadic {
		arg.AsVariadic()
	}
	if a.Default != nil {
		arg.WithDefault(*a.Default)
	}
	return arg
}
