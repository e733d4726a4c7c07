// Package console wires the global schema, command registry, verbosity
// handling and help rendering into one orchestrator.
package console

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gopalindians/framework/help"
	"github.com/gopalindians/framework/input"
	"github.com/gopalindians/framework/output"
)

// Console resolves and runs the active command for one invocation. Each
// invocation constructs its own Console/Input/Output graph; nothing is
// shared across concurrent callers.
type Console struct {
	name    string
	version string
	summary string

	out      *output.Output
	commands []Command
	index    map[string]Command

	globalFlags   []*input.Flag
	globalOptions []*input.Option

	verboseLevel output.Verbosity
	helpWidth    int
}

// Option adjusts a new Console.
type Option func(*Console)

// WithSummary sets the one-line description shown on the help screen.
func WithSummary(summary string) Option {
	return func(c *Console) { c.summary = summary }
}

// WithOutput replaces the default stdout/stderr-backed Output.
func WithOutput(out *output.Output) Option {
	return func(c *Console) { c.out = out }
}

// WithVerboseLevel sets the verbosity a single unstacked --verbose maps to.
// The default is output.Normal; stacked occurrences raise the level from
// there.
func WithVerboseLevel(v output.Verbosity) Option {
	return func(c *Console) { c.verboseLevel = v }
}

// WithHelpWidth fixes the help screen width instead of sizing it to the
// terminal.
func WithHelpWidth(width int) Option {
	return func(c *Console) { c.helpWidth = width }
}

// New returns a Console for the named application.
func New(name, version string, opts ...Option) *Console {
	c := &Console{
		name:         strings.TrimSpace(name),
		version:      version,
		index:        make(map[string]Command),
		verboseLevel: output.Normal,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.out == nil {
		c.out = output.New(os.Stdout, os.Stderr)
	}
	return c
}

// Output returns the console's shared output sink.
func (c *Console) Output() *output.Output { return c.out }

// Add registers commands. Command names must be unique.
func (c *Console) Add(cmds ...Command) error {
	for _, cmd := range cmds {
		name := strings.TrimSpace(cmd.Name())
		if _, ok := c.index[name]; ok || name == "" {
			return input.DuplicateNameError{Name: name}
		}
		c.commands = append(c.commands, cmd)
		c.index[name] = cmd
	}
	return nil
}

// AddGlobalFlag declares an application-level flag next to the built-in
// help/quiet/verbose ones. Collisions surface when Run bootstraps the
// schema.
func (c *Console) AddGlobalFlag(f *input.Flag) {
	c.globalFlags = append(c.globalFlags, f)
}

// AddGlobalOption declares an application-level option.
func (c *Console) AddGlobalOption(o *input.Option) {
	c.globalOptions = append(c.globalOptions, o)
}

// Run parses the token vector (the argument vector without the program
// name), resolves the active command and either runs it or renders help.
// Parse failures propagate untouched; mapping them to an exit code is the
// caller's concern.
func (c *Console) Run(ctx context.Context, tokens []string) error {
	in, err := c.bootstrap(tokens)
	if err != nil {
		return err
	}
	active := in.ActiveCommand()
	if active == nil {
		if err := in.Parse(); err != nil {
			return err
		}
		// Help is the requested output here, so verbosity flags do not
		// gate it.
		c.out.Out(strings.TrimRight(c.screen().Application(c.appInfo(), in.Definition(), c.commandInfos()), "\n"))
		return nil
	}
	return c.runCommand(ctx, in, c.index[active.Name()])
}

// bootstrap installs the global schema and registers the commands on a
// fresh Input.
func (c *Console) bootstrap(tokens []string) (*input.Input, error) {
	def := input.NewDefinition()
	globals := []*input.Flag{
		input.NewFlag("help", "show help").WithAlias("h"),
		input.NewFlag("quiet", "suppress all output").WithAlias("q"),
		input.NewFlag("verbose", "increase verbosity").WithAlias("v").AsStackable(),
	}
	globals = append(globals, c.globalFlags...)
	for _, f := range globals {
		if err := def.AddFlag(f); err != nil {
			return nil, err
		}
	}
	for _, o := range c.globalOptions {
		if err := def.AddOption(o); err != nil {
			return nil, err
		}
	}
	in := input.New(tokens, def)
	for _, cmd := range c.commands {
		if err := in.AddCommand(cmd); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func (c *Console) runCommand(ctx context.Context, in *input.Input, cmd Command) error {
	if err := in.Parse(); err != nil {
		return err
	}
	if f, err := in.Flag("help"); err == nil && f.Present() {
		c.out.Out(strings.TrimRight(c.screen().ForCommand(c.appInfo(), commandInfo(cmd), in.Definition()), "\n"))
		return nil
	}
	c.applyVerbosity(in)
	slog.Debug("console: running command", "command", cmd.Name())
	return cmd.Run(ctx, in, c.out)
}

// applyVerbosity maps --quiet and the stacked --verbose count onto the
// output. Quiet always wins.
func (c *Console) applyVerbosity(in *input.Input) {
	if f, err := in.Flag("quiet"); err == nil && f.Present() {
		c.out.SetVerbosity(output.Quiet)
		return
	}
	if f, err := in.Flag("verbose"); err == nil && f.Count() > 0 {
		c.out.SetVerbosity(c.verboseLevel + output.Verbosity(f.Count()-1))
	}
}

func (c *Console) screen() help.Screen {
	if c.helpWidth > 0 {
		return help.Screen{Width: c.helpWidth}
	}
	return help.NewScreen()
}

func (c *Console) appInfo() help.App {
	return help.App{Name: c.name, Version: c.version, Summary: c.summary}
}

func (c *Console) commandInfos() []help.Command {
	infos := make([]help.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		infos = append(infos, commandInfo(cmd))
	}
	return infos
}

func commandInfo(cmd Command) help.Command {
	return help.Command{
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Definition:  cmd.Definition(),
	}
}
