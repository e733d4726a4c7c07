package input

import "fmt"

// DuplicateNameError reports a schema registration collision.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("element %q is already registered", e.Name)
}

// NoSuchElementError reports a lookup for a name the schema does not declare.
type NoSuchElementError struct {
	Name string
}

func (e NoSuchElementError) Error() string {
	return fmt.Sprintf("no element named %q", e.Name)
}

// UnknownFlagError reports a short alias that no declared flag answers to.
type UnknownFlagError struct {
	Name string
}

func (e UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag -%s", e.Name)
}

// UnknownOptionError reports a long token that no declared flag or option
// answers to.
type UnknownOptionError struct {
	Name string
}

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option --%s", e.Name)
}

// UnknownArgumentError reports a positional token with no remaining
// argument slot.
type UnknownArgumentError struct {
	Token string
}

func (e UnknownArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument %q", e.Token)
}

// MissingValueError reports a required element left unresolved after parsing,
// or an option trigger with no attached value.
type MissingValueError struct {
	Name string
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("missing required value for %q", e.Name)
}
