package cmdline

import (
	"strings"
	"testing"
)

func TestQuote_FastPath(t *testing.T) {
	// Arguments with no whitespace or quote characters pass through
	// unquoted when force is off.
	testCases := []string{
		"a",
		"simple",
		"/usr/bin/grep",
		`C:\Program.exe`,
		"--flag=value",
		`trailing\`,
		`\\server\share`,
		"unicode-héllo",
	}

	for _, arg := range testCases {
		t.Run(arg, func(t *testing.T) {
			result := Quote(arg, false)
			if result != arg {
				t.Errorf("Quote(%q, false) = %q, want unquoted passthrough", arg, result)
			}
		})
	}
}

func TestQuote_TriggersQuoting(t *testing.T) {
	testCases := []struct {
		name string
		arg  string
	}{
		{"empty", ""},
		{"space", "a b"},
		{"tab", "a\tb"},
		{"newline", "a\nb"},
		{"vtab", "a\vb"},
		{"quote", `a"b`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Quote(tc.arg, false)
			if !strings.HasPrefix(result, `"`) || !strings.HasSuffix(result, `"`) {
				t.Errorf("Quote(%q, false) = %q, want wrapped in quotes", tc.arg, result)
			}
		})
	}
}

func TestQuote_Force(t *testing.T) {
	// force=true wraps even arguments that need no quoting.
	result := Quote("simple", true)
	if result != `"simple"` {
		t.Errorf("Quote(simple, true) = %q, want %q", result, `"simple"`)
	}
}

func TestQuote_Exact(t *testing.T) {
	testCases := []struct {
		name     string
		arg      string
		expected string
	}{
		{"empty", "", `""`},
		{"interior space", "a b", `"a b"`},
		{"embedded quote", `x"y`, `"x\"y"`},
		{"only quote", `"`, `"\""`},
		{"backslash then quote", `\"`, `"\\\""`},
		{"two backslashes then quote", `\\"`, `"\\\\\""`},
		{"trailing backslash", `a\`, `"a\\"`},
		{"backslashes mid-string", `a\b c`, `"a\b c"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Quote(tc.arg, true)
			if result != tc.expected {
				t.Errorf("Quote(%q, true) = %q, want %q", tc.arg, result, tc.expected)
			}
		})
	}
}

func TestQuote_TrailingBackslashLaw(t *testing.T) {
	// An argument ending in n backslashes ends with 2n backslashes
	// before the closing quote.
	for n := 0; n <= 4; n++ {
		arg := "a " + strings.Repeat(`\`, n)
		result := Quote(arg, false)

		expected := `"a ` + strings.Repeat(`\`, 2*n) + `"`
		if result != expected {
			t.Errorf("n=%d: Quote(%q) = %q, want %q", n, arg, result, expected)
		}
	}
}

func TestQuote_BackslashQuoteLaw(t *testing.T) {
	// A literal quote preceded by n backslashes is emitted as 2n+1
	// backslashes then the quote.
	for n := 0; n <= 4; n++ {
		arg := "a" + strings.Repeat(`\`, n) + `"b`
		result := Quote(arg, false)

		expected := `"a` + strings.Repeat(`\`, 2*n+1) + `"b"`
		if result != expected {
			t.Errorf("n=%d: Quote(%q) = %q, want %q", n, arg, result, expected)
		}
	}
}

func TestJoin(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		force    bool
		expected string
	}{
		{"none", nil, false, ""},
		{"single plain", []string{"prog"}, false, "prog"},
		{"mixed", []string{"prog", "a b", "c"}, false, `prog "a b" c`},
		{"forced", []string{"prog", "a"}, true, `"prog" "a"`},
		{"empty argument", []string{"prog", ""}, false, `prog ""`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Join(tc.args, tc.force)
			if result != tc.expected {
				t.Errorf("Join(%v, %v) = %q, want %q", tc.args, tc.force, result, tc.expected)
			}
			if strings.HasSuffix(result, " ") {
				t.Errorf("Join(%v) = %q has a trailing separator", tc.args, result)
			}
		})
	}
}

func TestCommandLine(t *testing.T) {
	cl := New([]string{"prog", "a b", `x"y`}, false)

	if cl.Program() != "prog" {
		t.Errorf("Program() = %q, want %q", cl.Program(), "prog")
	}
	if len(cl.Args()) != 3 {
		t.Errorf("Args() has %d elements, want 3", len(cl.Args()))
	}
	expected := `prog "a b" "x\"y"`
	if cl.String() != expected {
		t.Errorf("String() = %q, want %q", cl.String(), expected)
	}

	empty := New(nil, false)
	if empty.Program() != "" {
		t.Errorf("empty Program() = %q, want empty", empty.Program())
	}
}
