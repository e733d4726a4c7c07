package input

import "strings"

// Command is the minimal view of a registered command the parser needs:
// its name and its own input schema.
type Command interface {
	Name() string
	Definition() *Definition
}

// Input owns the raw argument tokens, the global schema and the set of
// registered commands, and resolves parsed values against them. Create one
// Input per invocation.
type Input struct {
	tokens     []string
	definition *Definition

	commands []Command
	index    map[string]Command

	active         Command
	commandIndex   int
	activeResolved bool
	parsed         bool
}

// New wraps a token vector and the global schema. The tokens must not
// include the program name.
func New(tokens []string, definition *Definition) *Input {
	if definition == nil {
		definition = NewDefinition()
	}
	return &Input{
		tokens:       tokens,
		definition:   definition,
		index:        make(map[string]Command),
		commandIndex: -1,
	}
}

// Tokens returns the raw argument vector.
func (in *Input) Tokens() []string { return in.tokens }

// Definition returns the global schema.
func (in *Input) Definition() *Definition { return in.definition }

// AddCommand registers a command for resolution by its name.
func (in *Input) AddCommand(cmd Command) error {
	name := strings.TrimSpace(cmd.Name())
	if name == "" {
		return DuplicateNameError{Name: name}
	}
	if _, ok := in.index[name]; ok {
		return DuplicateNameError{Name: name}
	}
	in.commands = append(in.commands, cmd)
	in.index[name] = cmd
	return nil
}

// Commands returns the registered commands in registration order.
func (in *Input) Commands() []Command { return in.commands }

// ActiveCommand resolves which registered command the token vector selects,
// or nil. This is a lightweight pre-scan against the global schema only; it
// never mutates resolved values, so it is safely repeatable before Parse
// commits results.
func (in *Input) ActiveCommand() Command {
	if in.activeResolved {
		return in.active
	}
	in.commandIndex = -1
	if idx := in.firstBareIndex(); idx >= 0 {
		if cmd, ok := in.index[in.tokens[idx]]; ok {
			in.active = cmd
			in.commandIndex = idx
		}
	}
	in.activeResolved = true
	return in.active
}

// firstBareIndex walks the vector skipping triggers and the values they
// consume, and returns the index of the first positional token, or -1.
// Parse treats the index that selected a command as the command token, so
// it can never double as an option value.
func (in *Input) firstBareIndex() int {
	for i := 0; i < len(in.tokens); i++ {
		tok := in.tokens[i]
		switch {
		case tok == "--":
			// Everything after the terminator is positional data, never
			// a command name.
			return -1
		case strings.HasPrefix(tok, "--"):
			if in.consumesNext(tok[2:], i) {
				i++
			}
		case len(tok) > 1 && tok[0] == '-':
			if in.consumesNext(tok[1:], i) {
				i++
			}
		default:
			return i
		}
	}
	return -1
}

// consumesNext reports whether the trigger token named by body swallows the
// following token as an option value.
func (in *Input) consumesNext(body string, pos int) bool {
	if strings.Contains(body, "=") {
		return false
	}
	if _, err := in.definition.Flag(body); err == nil {
		return false
	}
	if _, err := in.definition.Option(body); err != nil {
		return false
	}
	return pos+1 < len(in.tokens) && !isTrigger(in.tokens[pos+1])
}

func isTrigger(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

// Flag resolves a flag by name or alias, command-local names first.
func (in *Input) Flag(name string) (*Flag, error) {
	if cmd := in.ActiveCommand(); cmd != nil {
		if f, err := cmd.Definition().Flag(name); err == nil {
			return f, nil
		}
	}
	return in.definition.Flag(name)
}

// Option resolves an option by name or alias, command-local names first.
func (in *Input) Option(name string) (*Option, error) {
	if cmd := in.ActiveCommand(); cmd != nil {
		if o, err := cmd.Definition().Option(name); err == nil {
			return o, nil
		}
	}
	return in.definition.Option(name)
}

// Argument resolves an argument by name, command-local names first.
func (in *Input) Argument(name string) (*Argument, error) {
	if cmd := in.ActiveCommand(); cmd != nil {
		if a, err := cmd.Definition().Argument(name); err == nil {
			return a, nil
		}
	}
	return in.definition.Argument(name)
}
