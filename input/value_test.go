package input

import "testing"

func TestValueKinds(t *testing.T) {
	cases := []struct {
		name    string
		value   Value
		kind    ValueKind
		present bool
		boolean bool
		count   int
		str     string
	}{
		{name: "absent", value: absentValue(), kind: KindAbsent},
		{name: "bool", value: boolValue(true), kind: KindBool, present: true, boolean: true, count: 1},
		{name: "count", value: countValue(3), kind: KindCount, present: true, boolean: true, count: 3},
		{name: "string", value: stringValue("x"), kind: KindString, present: true, boolean: true, count: 1, str: "x"},
		{name: "empty-string", value: stringValue(""), kind: KindString, present: true, boolean: false, count: 0},
		{name: "list", value: listValue([]string{"a", "b"}), kind: KindList, present: true, boolean: true, count: 2, str: "a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.value.Kind() != tc.kind {
				t.Fatalf("kind = %v", tc.value.Kind())
			}
			if tc.value.Present() != tc.present {
				t.Fatalf("present = %v", tc.value.Present())
			}
			if tc.value.Bool() != tc.boolean {
				t.Fatalf("bool = %v", tc.value.Bool())
			}
			if tc.value.Count() != tc.count {
				t.Fatalf("count = %d", tc.value.Count())
			}
			if tc.value.String() != tc.str {
				t.Fatalf("string = %q", tc.value.String())
			}
		})
	}
}

func TestOptionConversions(t *testing.T) {
	o := NewOption("port", "")
	o.set("8080")
	n, err := o.Int()
	if err != nil || n != 8080 {
		t.Fatalf("Int = %d, %v", n, err)
	}
	o.set("1.5")
	f, err := o.Float64()
	if err != nil || f != 1.5 {
		t.Fatalf("Float64 = %v, %v", f, err)
	}
	o.set("true")
	b, err := o.Bool()
	if err != nil || !b {
		t.Fatalf("Bool = %v, %v", b, err)
	}
	o.set("2s")
	d, err := o.Duration()
	if err != nil || d.Seconds() != 2 {
		t.Fatalf("Duration = %v, %v", d, err)
	}
	o.set("nope")
	if _, err := o.Int(); err == nil {
		t.Fatalf("expected conversion error")
	}
}

func TestOptionDefaultFallback(t *testing.T) {
	o := NewOption("output", "").WithDefault("dist")
	if o.String() != "dist" {
		t.Fatalf("default = %q", o.String())
	}
	o.set("build")
	if o.String() != "build" {
		t.Fatalf("value = %q", o.String())
	}
}
