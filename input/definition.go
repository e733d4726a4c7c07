package input

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Definition owns the full input schema for either the application or a
// single command: flags, options and positional arguments keyed by name,
// with aliases as a secondary index. Insertion order is preserved for help
// rendering and positional matching.
type Definition struct {
	flags     []*Flag
	options   []*Option
	arguments []*Argument

	names   map[string]struct{}
	aliases map[string]struct{}
}

// NewDefinition returns an empty schema.
func NewDefinition() *Definition {
	return &Definition{
		names:   make(map[string]struct{}),
		aliases: make(map[string]struct{}),
	}
}

// AddFlag registers a flag descriptor.
func (d *Definition) AddFlag(flag *Flag) error {
	if err := d.reserve(flag.Name, flag.Alias); err != nil {
		return err
	}
	d.flags = append(d.flags, flag)
	return nil
}

// AddOption registers an option descriptor.
func (d *Definition) AddOption(option *Option) error {
	if err := d.reserve(option.Name, option.Alias); err != nil {
		return err
	}
	d.options = append(d.options, option)
	return nil
}

// AddArgument registers a positional argument descriptor. Only the last
// argument may be variadic.
func (d *Definition) AddArgument(arg *Argument) error {
	if len(d.arguments) > 0 && d.arguments[len(d.arguments)-1].Variadic {
		return fmt.Errorf("argument %q: variadic argument %q must be declared last",
			arg.Name, d.arguments[len(d.arguments)-1].Name)
	}
	if err := d.reserve(arg.Name, ""); err != nil {
		return err
	}
	d.arguments = append(d.arguments, arg)
	return nil
}

func (d *Definition) reserve(name, alias string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("element name is required")
	}
	if _, ok := d.names[name]; ok {
		return DuplicateNameError{Name: name}
	}
	if alias != "" {
		if utf8.RuneCountInString(alias) != 1 {
			return fmt.Errorf("alias %q for %q must be a single character", alias, name)
		}
		if _, ok := d.aliases[alias]; ok {
			return DuplicateNameError{Name: alias}
		}
	}
	d.names[name] = struct{}{}
	if alias != "" {
		d.aliases[alias] = struct{}{}
	}
	return nil
}

// Flag resolves a flag by primary name or alias.
func (d *Definition) Flag(name string) (*Flag, error) {
	for _, f := range d.flags {
		if f.Name == name || (f.Alias != "" && f.Alias == name) {
			return f, nil
		}
	}
	return nil, NoSuchElementError{Name: name}
}

// Option resolves an option by primary name or alias.
func (d *Definition) Option(name string) (*Option, error) {
	for _, o := range d.options {
		if o.Name == name || (o.Alias != "" && o.Alias == name) {
			return o, nil
		}
	}
	return nil, NoSuchElementError{Name: name}
}

// Argument resolves an argument by name.
func (d *Definition) Argument(name string) (*Argument, error) {
	for _, a := range d.arguments {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, NoSuchElementError{Name: name}
}

// Flags returns the declared flags in insertion order.
func (d *Definition) Flags() []*Flag { return d.flags }

// Options returns the declared options in insertion order.
func (d *Definition) Options() []*Option { return d.options }

// Arguments returns the declared arguments in declaration order.
func (d *Definition) Arguments() []*Argument { return d.arguments }

func (d *Definition) reset() {
	for _, f := range d.flags {
		f.reset()
	}
	for _, o := range d.options {
		o.reset()
	}
	for _, a := range d.arguments {
		a.reset()
	}
}
