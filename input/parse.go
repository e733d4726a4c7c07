package input

import (
	"log/slog"
	"strings"
)

// Parse consumes the token vector against the merged schema and commits
// resolved values. It runs at most once; repeat calls are no-ops. No partial
// results survive a failure within a descriptor set that callers should
// trust — parsing is all-or-nothing per invocation.
func (in *Input) Parse() error {
	if in.parsed {
		return nil
	}
	active := in.ActiveCommand()

	// Descriptors may be reused across invocations; only this parse
	// commits values.
	in.definition.reset()
	if active != nil {
		active.Definition().reset()
	}

	var positional []string
	terminated := false

	for i := 0; i < len(in.tokens); i++ {
		tok := in.tokens[i]
		switch {
		case !terminated && tok == "--":
			terminated = true
		case !terminated && strings.HasPrefix(tok, "--"):
			consumed, err := in.parseLong(tok[2:], i)
			if err != nil {
				return err
			}
			i += consumed
		case !terminated && isTrigger(tok):
			consumed, err := in.parseShort(tok[1:], i)
			if err != nil {
				return err
			}
			i += consumed
		default:
			if i == in.commandIndex {
				continue
			}
			positional = append(positional, tok)
		}
	}

	if err := in.bindPositional(positional); err != nil {
		return err
	}
	if err := in.checkRequired(); err != nil {
		return err
	}
	in.parsed = true
	command := ""
	if active != nil {
		command = active.Name()
	}
	slog.Debug("input: parse committed", "tokens", len(in.tokens), "command", command)
	return nil
}

// parseLong handles a "--name" or "--name=value" trigger. The returned count
// is the number of extra tokens consumed as an option value.
func (in *Input) parseLong(body string, pos int) (int, error) {
	name, value, hasValue := strings.Cut(body, "=")
	if name == "" {
		return 0, UnknownOptionError{Name: body}
	}
	if !hasValue {
		if f, err := in.Flag(name); err == nil {
			f.record()
			return 0, nil
		}
	}
	o, err := in.Option(name)
	if err != nil {
		return 0, UnknownOptionError{Name: name}
	}
	if hasValue {
		o.set(value)
		return 0, nil
	}
	if in.valueAvailable(pos) {
		o.set(in.tokens[pos+1])
		return 1, nil
	}
	return 0, MissingValueError{Name: name}
}

// valueAvailable reports whether the token after pos can serve as an option
// value. The command token never can; the pre-scan selected the command on
// the strength of that token staying positional.
func (in *Input) valueAvailable(pos int) bool {
	next := pos + 1
	if next >= len(in.tokens) || next == in.commandIndex {
		return false
	}
	return !isTrigger(in.tokens[next])
}

// parseShort handles a "-a" trigger, an "-a=value" form, or a stacked
// cluster such as "-abc" / "-vvv".
func (in *Input) parseShort(body string, pos int) (int, error) {
	if alias, value, hasValue := strings.Cut(body, "="); hasValue {
		o, err := in.Option(alias)
		if err != nil {
			return 0, UnknownFlagError{Name: alias}
		}
		o.set(value)
		return 0, nil
	}
	if len(body) == 1 {
		if f, err := in.Flag(body); err == nil {
			f.record()
			return 0, nil
		}
		o, err := in.Option(body)
		if err != nil {
			return 0, UnknownFlagError{Name: body}
		}
		if in.valueAvailable(pos) {
			o.set(in.tokens[pos+1])
			return 1, nil
		}
		return 0, MissingValueError{Name: o.Name}
	}
	// Stacked aliases accumulate flag occurrences; options cannot take a
	// value inside a cluster.
	for _, r := range body {
		alias := string(r)
		if f, err := in.Flag(alias); err == nil {
			f.record()
			continue
		}
		if o, err := in.Option(alias); err == nil {
			return 0, MissingValueError{Name: o.Name}
		}
		return 0, UnknownFlagError{Name: alias}
	}
	return 0, nil
}

// bindPositional matches bare tokens to declared arguments in order,
// command-local arguments before global ones.
func (in *Input) bindPositional(tokens []string) error {
	args := in.mergedArguments()
	idx := 0
	for _, tok := range tokens {
		if idx >= len(args) {
			return UnknownArgumentError{Token: tok}
		}
		arg := args[idx]
		arg.bind(tok)
		if !arg.Variadic {
			idx++
		}
	}
	return nil
}

func (in *Input) mergedArguments() []*Argument {
	active := in.ActiveCommand()
	if active == nil {
		return in.definition.Arguments()
	}
	def := active.Definition()
	args := append([]*Argument{}, def.Arguments()...)
	for _, a := range in.definition.Arguments() {
		if _, shadowed := def.names[a.Name]; shadowed {
			continue
		}
		args = append(args, a)
	}
	return args
}

// checkRequired fails when a required option or argument ends the parse
// without a supplied value or a default.
func (in *Input) checkRequired() error {
	var shadow map[string]struct{}
	if active := in.ActiveCommand(); active != nil {
		def := active.Definition()
		shadow = def.names
		for _, o := range def.Options() {
			if o.Required && !o.resolved() {
				return MissingValueError{Name: o.Name}
			}
		}
		for _, a := range def.Arguments() {
			if a.Required && !a.resolved() {
				return MissingValueError{Name: a.Name}
			}
		}
	}
	for _, o := range in.definition.Options() {
		if _, ok := shadow[o.Name]; ok {
			continue
		}
		if o.Required && !o.resolved() {
			return MissingValueError{Name: o.Name}
		}
	}
	for _, a := range in.definition.Arguments() {
		if _, ok := shadow[a.Name]; ok {
			continue
		}
		if a.Required && !a.resolved() {
			return MissingValueError{Name: a.Name}
		}
	}
	return nil
}
