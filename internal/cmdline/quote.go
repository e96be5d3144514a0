// Package cmdline builds and splits escaped command lines.
//
// The quoting follows the CommandLineToArgvW convention: splitting a
// quoted command line with a standard argv tokenizer yields back the
// original argument strings exactly, including empty strings and
// strings containing quotes, backslashes, or whitespace.
package cmdline

import "strings"

// quoteTriggers are the characters that force an argument to be quoted.
const quoteTriggers = " \t\n\v\""

// Quote encodes a single argument so that a standard argv tokenizer
// returns it unchanged. It does not add separators between arguments.
//
// Unless force is set, a non-empty argument with no whitespace or
// quote characters is returned as-is. Some programs parse their
// command line non-standardly, so needless quoting is avoided.
func Quote(arg string, force bool) string {
	if !force && arg != "" && !strings.ContainsAny(arg, quoteTriggers) {
		return arg
	}

	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')

	for i := 0; i < len(arg); {
		backslashes := 0
		for i < len(arg) && arg[i] == '\\' {
			i++
			backslashes++
		}

		switch {
		case i == len(arg):
			// Escape all backslashes, but let the closing quote we
			// add below be interpreted as a metacharacter.
			writeBackslashes(&b, backslashes*2)
		case arg[i] == '"':
			// Escape all backslashes and the following quote.
			writeBackslashes(&b, backslashes*2+1)
			b.WriteByte('"')
			i++
		default:
			// Backslashes aren't special here.
			writeBackslashes(&b, backslashes)
			b.WriteByte(arg[i])
			i++
		}
	}

	b.WriteByte('"')
	return b.String()
}

// Join quotes each argument in order and joins them with single
// spaces. There is no separator after the last argument.
func Join(args []string, force bool) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = Quote(arg, force)
	}
	return strings.Join(quoted, " ")
}

func writeBackslashes(b *strings.Builder, n int) {
	for ; n > 0; n-- {
		b.WriteByte('\\')
	}
}
