package input

// ValueKind discriminates the possible results of parsing one element.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindBool
	KindCount
	KindString
	KindList
)

// Value is the resolved result of parsing a flag, option or argument.
// Keeping the kinds explicit keeps accessors exhaustive instead of
// overloading a single numeric field.
type Value struct {
	kind  ValueKind
	count int
	str   string
	list  []string
}

func absentValue() Value { return Value{kind: KindAbsent} }
func boolValue(set bool) Value { return Value{kind: KindBool, count: boolCount(set)} }
func countValue(n int) Value { return Value{kind: KindCount, count: n} }
func stringValue(s string) Value { return Value{kind: KindString, str: s} }
func listValue(vs []string) Value { return Value{kind: KindList, list: vs} }

func boolCount(set bool) int {
	if set {
		return 1
	}
	return 0
}

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Present reports whether the element was seen during parsing.
func (v Value) Present() bool { return v.kind != KindAbsent }

// Bool reports whether the element resolved truthy.
func (v Value) Bool() bool {
	switch v.kind {
	case KindBool, KindCount:
		return v.count > 0
	case KindString:
		return v.str != ""
	case KindList:
		return len(v.list) > 0
	default:
		return false
	}
}

// Count returns the accumulated occurrence count. Non-stackable booleans
// report at most 1.
func (v Value) Count() int {
	switch v.kind {
	case KindBool, KindCount:
		return v.count
	case KindString:
		if v.str != "" {
			return 1
		}
		return 0
	case KindList:
		return len(v.list)
	default:
		return 0
	}
}

// String returns the attached string value, or "" for non-string kinds.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindList:
		if len(v.list) > 0 {
			return v.list[0]
		}
		return ""
	default:
		return ""
	}
}

// Strings returns all collected values for list kinds, or a single-element
// slice for string kinds.
func (v Value) Strings() []string {
	switch v.kind {
	case KindList:
		return v.list
	case KindString:
		return []string{v.str}
	default:
		return nil
	}
}
