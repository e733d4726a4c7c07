package input

// Flag describes a boolean or stackable-count input element. Flags never
// carry an attached value; stackable flags accumulate a count across
// repeated occurrences.
type Flag struct {
	Name        string
	Alias       string
	Description string
	Stackable   bool

	value Value
}

// NewFlag returns a flag descriptor with the given primary name.
func NewFlag(name, description string) *Flag {
	return &Flag{Name: name, Description: description}
}

// WithAlias sets the single-character shorthand.
func (f *Flag) WithAlias(alias string) *Flag {
	f.Alias = alias
	return f
}

// AsStackable marks repeated occurrences to accumulate a count.
func (f *Flag) AsStackable() *Flag {
	f.Stackable = true
	return f
}

// Value returns the resolved parse result.
func (f *Flag) Value() Value { return f.value }

// Present reports whether the flag appeared at least once.
func (f *Flag) Present() bool { return f.value.Present() }

// Count returns the accumulated occurrence count. Non-stackable flags
// resolve to 1 no matter how often they repeat.
func (f *Flag) Count() int { return f.value.Count() }

func (f *Flag) record() {
	if f.Stackable {
		f.value = countValue(f.value.Count() + 1)
		return
	}
	f.value = boolValue(true)
}

func (f *Flag) reset() { f.value = absentValue() }
