package input

// Argument describes a positional input element. Arguments bind to bare
// tokens in declaration order; a variadic argument absorbs every remaining
// unmatched token and must be declared last.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Default     string
	HasDefault  bool
	Variadic    bool

	value Value
}

// NewArgument returns an argument descriptor with the given name.
func NewArgument(name, description string) *Argument {
	return &Argument{Name: name, Description: description}
}

// WithDefault sets the value used when no token binds to the argument.
func (a *Argument) WithDefault(value string) *Argument {
	a.Default = value
	a.HasDefault = true
	return a
}

// AsRequired marks the argument as mandatory.
func (a *Argument) AsRequired() *Argument {
	a.Required = true
	return a
}

// AsVariadic marks the argument to consume all remaining tokens.
func (a *Argument) AsVariadic() *Argument {
	a.Variadic = true
	return a
}

// Value returns the resolved parse result without applying the default.
func (a *Argument) Value() Value { return a.value }

// Present reports whether at least one token bound to the argument.
func (a *Argument) Present() bool { return a.value.Present() }

// String returns the bound token, falling back to the default. For variadic
// arguments it returns the first collected token.
func (a *Argument) String() string {
	if a.value.Present() {
		return a.value.String()
	}
	return a.Default
}

// Strings returns every collected token for variadic arguments.
func (a *Argument) Strings() []string {
	if a.value.Present() {
		return a.value.Strings()
	}
	if a.HasDefault {
		return []string{a.Default}
	}
	return nil
}

func (a *Argument) bind(token string) {
	if a.Variadic {
		a.value = listValue(append(a.value.Strings(), token))
		return
	}
	a.value = stringValue(token)
}

func (a *Argument) reset() { a.value = absentValue() }

// resolved reports whether the argument ends parsing with a usable value.
func (a *Argument) resolved() bool { return a.value.Present() || a.HasDefault }
