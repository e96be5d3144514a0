package cmdline

import "strings"

// Split tokenizes an escaped command line back into its argument
// strings. It is the inverse of Join and implements the standard
// argv-splitting rules that Quote targets:
//
//   - unquoted space or tab separates arguments
//   - 2n backslashes before a quote become n backslashes, and the
//     quote toggles quoted mode
//   - 2n+1 backslashes before a quote become n backslashes and a
//     literal quote
//   - backslashes not followed by a quote are literal
func Split(commandLine string) []string {
	var args []string

	i := 0
	for {
		for i < len(commandLine) && (commandLine[i] == ' ' || commandLine[i] == '\t') {
			i++
		}
		if i == len(commandLine) {
			return args
		}

		var b strings.Builder
		inQuotes := false
		for i < len(commandLine) {
			c := commandLine[i]

			if c == '\\' {
				n := 0
				for i < len(commandLine) && commandLine[i] == '\\' {
					n++
					i++
				}
				if i < len(commandLine) && commandLine[i] == '"' {
					writeBackslashes(&b, n/2)
					if n%2 == 1 {
						// Odd run: the quote is escaped.
						b.WriteByte('"')
						i++
					}
					// Even run: the quote is a metacharacter,
					// handled on the next iteration.
				} else {
					writeBackslashes(&b, n)
				}
				continue
			}

			if c == '"' {
				inQuotes = !inQuotes
				i++
				continue
			}

			if !inQuotes && (c == ' ' || c == '\t') {
				break
			}

			b.WriteByte(c)
			i++
		}

		args = append(args, b.String())
	}
}
