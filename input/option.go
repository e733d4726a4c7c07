package input

import (
	"fmt"
	"strconv"
	"time"
)

// Option describes a named input element that requires an attached value,
// supplied as "--name=value", "--name value" or "-a value".
type Option struct {
	Name        string
	Alias       string
	Description string
	Required    bool
	Default     string
	HasDefault  bool

	value Value
}

// NewOption returns an option descriptor with the given primary name.
func NewOption(name, description string) *Option {
	return &Option{Name: name, Description: description}
}

// WithAlias sets the single-character shorthand.
func (o *Option) WithAlias(alias string) *Option {
	o.Alias = alias
	return o
}

// WithDefault sets the value used when the option is not supplied.
func (o *Option) WithDefault(value string) *Option {
	o.Default = value
	o.HasDefault = true
	return o
}

// AsRequired marks the option as mandatory; parsing fails when a required
// option without a default stays unresolved.
func (o *Option) AsRequired() *Option {
	o.Required = true
	return o
}

// Value returns the resolved parse result without applying the default.
func (o *Option) Value() Value { return o.value }

// Present reports whether the option was supplied on the command line.
func (o *Option) Present() bool { return o.value.Present() }

// String returns the supplied value, falling back to the default.
func (o *Option) String() string {
	if o.value.Present() {
		return o.value.String()
	}
	return o.Default
}

// Int converts the resolved value to an integer.
func (o *Option) Int() (int, error) {
	n, err := strconv.Atoi(o.String())
	if err != nil {
		return 0, fmt.Errorf("option --%s: %w", o.Name, err)
	}
	return n, nil
}

// Float64 converts the resolved value to a float.
func (o *Option) Float64() (float64, error) {
	f, err := strconv.ParseFloat(o.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("option --%s: %w", o.Name, err)
	}
	return f, nil
}

// Bool converts the resolved value to a boolean.
func (o *Option) Bool() (bool, error) {
	b, err := strconv.ParseBool(o.String())
	if err != nil {
		return false, fmt.Errorf("option --%s: %w", o.Name, err)
	}
	return b, nil
}

// Duration converts the resolved value to a time.Duration.
func (o *Option) Duration() (time.Duration, error) {
	d, err := time.ParseDuration(o.String())
	if err != nil {
		return 0, fmt.Errorf("option --%s: %w", o.Name, err)
	}
	return d, nil
}

func (o *Option) set(value string) { o.value = stringValue(value) }

func (o *Option) reset() { o.value = absentValue() }

// resolved reports whether the option ends parsing with a usable value.
func (o *Option) resolved() bool { return o.value.Present() || o.HasDefault }
