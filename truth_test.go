package fdict

import "testing"

type truthTest struct {
	in   any
	want bool
}

var truthTests = []truthTest{
	{nil, false},
	{false, false},
	{true, true},
	{"", false},
	{"x", true},
	{0, false},
	{1, true},
	{int64(0), false},
	{0.0, false},
	{0.5, true},
	{uint8(0), false},
	{uint8(7), true},
	{[]string(nil), false},
	{[]string{"a"}, true},
	{map[string]any{}, false},
	{map[string]any{"a": 1}, true},
	{(*Dict)(nil), false},
	{struct{}{}, true},
}

func TestTruth(t *testing.T) {
	for _, tc := range truthTests {
		if got := Truth(tc.in); got != tc.want {
			t.Errorf("Truth(%#v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"s", "s"},
		{[]byte("b"), "b"},
		{42, "42"},
		{4.5, "4.5"},
		{true, "true"},
	}
	for _, tc := range tests {
		if got := Stringify(tc.in); got != tc.want {
			t.Errorf("Stringify(%#v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
