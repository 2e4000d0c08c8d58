package parse

import (
	"reflect"
	"testing"
)

type parseTest struct {
	in     string
	alts   []Alt
	xforms []string
}

var parseTests = []parseTest{
	{
		in:   "name",
		alts: []Alt{{Kind: PlainKey, Text: "name", Raw: "name"}},
	},
	{
		in: "name|id",
		alts: []Alt{
			{Kind: PlainKey, Text: "name", Raw: "name"},
			{Kind: PlainKey, Text: "id", Raw: "id"},
		},
	},
	{
		in: "name|'N/A'",
		alts: []Alt{
			{Kind: PlainKey, Text: "name", Raw: "name"},
			{Kind: Literal, Text: "N/A", Raw: "'N/A'"},
		},
	},
	{
		in: `name|"N/A"`,
		alts: []Alt{
			{Kind: PlainKey, Text: "name", Raw: "name"},
			{Kind: Literal, Text: "N/A", Raw: `"N/A"`},
		},
	},
	{
		in: "name|id|",
		alts: []Alt{
			{Kind: PlainKey, Text: "name", Raw: "name"},
			{Kind: PlainKey, Text: "id", Raw: "id"},
			{Kind: Empty},
		},
	},
	{
		in: "|name",
		alts: []Alt{
			{Kind: Empty},
			{Kind: PlainKey, Text: "name", Raw: "name"},
		},
	},
	{
		in:     "name:lower",
		alts:   []Alt{{Kind: PlainKey, Text: "name", Raw: "name"}},
		xforms: []string{"lower"},
	},
	{
		in:     "name:lower:unspace",
		alts:   []Alt{{Kind: PlainKey, Text: "name", Raw: "name"}},
		xforms: []string{"lower", "unspace"},
	},
	{
		// empty transform names survive parsing and fail dispatch
		in:     "name::x",
		alts:   []Alt{{Kind: PlainKey, Text: "name", Raw: "name"}},
		xforms: []string{"", "x"},
	},
	{
		in:     "name|id|:upper",
		alts:   []Alt{{Kind: PlainKey, Text: "name", Raw: "name"}, {Kind: PlainKey, Text: "id", Raw: "id"}, {Kind: Empty}},
		xforms: []string{"upper"},
	},
	{
		in:   "",
		alts: []Alt{{Kind: Empty}},
	},
	{
		in:     ":upper",
		alts:   []Alt{{Kind: Empty}},
		xforms: []string{"upper"},
	},
	{
		// a lone quote character is too short to be a literal
		in:   "'",
		alts: []Alt{{Kind: PlainKey, Text: "'", Raw: "'"}},
	},
	{
		in:   "''",
		alts: []Alt{{Kind: Literal, Text: "", Raw: "''"}},
	},
	{
		// embedded quotes are not unescaped
		in:   `'a"b'`,
		alts: []Alt{{Kind: Literal, Text: `a"b`, Raw: `'a"b'`}},
	},
	{
		// mismatched quote characters do not form a literal
		in:   `'abc"`,
		alts: []Alt{{Kind: PlainKey, Text: `'abc"`, Raw: `'abc"`}},
	},
	{
		in:   "a'b'",
		alts: []Alt{{Kind: PlainKey, Text: "a'b'", Raw: "a'b'"}},
	},
}

func TestParse(t *testing.T) {
	for _, tc := range parseTests {
		expr := Parse(tc.in)
		if !reflect.DeepEqual(expr.Alts, tc.alts) {
			t.Errorf("Parse(%q) alts: got %+v, want %+v", tc.in, expr.Alts, tc.alts)
		}
		got := expr.Transforms
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, tc.xforms) {
			t.Errorf("Parse(%q) transforms: got %q, want %q", tc.in, expr.Transforms, tc.xforms)
		}
	}
}

func TestParseNeverEmpty(t *testing.T) {
	for _, in := range []string{"", ":", "|", "||", "a|b:c:d", "::::"} {
		expr := Parse(in)
		if len(expr.Alts) == 0 {
			t.Errorf("Parse(%q): no alternatives", in)
		}
	}
}
