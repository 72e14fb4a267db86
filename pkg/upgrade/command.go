// Package upgrade synthesizes the pip upgrade command from a parsed
// package sequence and the configuration record. Synthesis is pure:
// printing or executing the result is the caller's responsibility.
package upgrade

import "strings"

// Command is one shell invocation represented as an argument vector.
//
// Produced once and consumed once: run mode executes the vector as a
// subprocess, print mode renders it with String. It is never persisted.
type Command struct {
	argv []string
}

// NewCommand wraps an argument vector as a Command.
//
// Parameters:
//   - argv: Ordered argument tokens, first token is the executable
//
// Returns:
//   - Command: The wrapped command
func NewCommand(argv []string) Command {
	return Command{argv: argv}
}

// Argv returns a copy of the argument vector.
//
// Returns:
//   - []string: Ordered argument tokens, first token is the executable
func (c Command) Argv() []string {
	out := make([]string, len(c.argv))
	copy(out, c.argv)
	return out
}

// Empty reports whether the command carries no tokens.
//
// Returns:
//   - bool: true when the argument vector is empty
func (c Command) Empty() bool {
	return len(c.argv) == 0
}

// String renders the command as a single shell line.
//
// Each token is quoted only when needed to keep it a single shell token,
// so the common case prints exactly as pip would be typed by hand.
//
// Returns:
//   - string: Space-joined, minimally quoted shell command
func (c Command) String() string {
	quoted := make([]string, len(c.argv))
	for i, arg := range c.argv {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

// shellQuote escapes a string for safe use as a single shell token.
//
// Safe tokens (alphanumeric plus a limited set of punctuation) are
// returned unquoted for readability. Everything else is wrapped in
// single quotes, with embedded single quotes closed, escaped, and
// reopened.
//
// Parameters:
//   - s: String to escape for shell usage
//
// Returns:
//   - string: Shell-safe token, quoted only when required
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}

	needsQuote := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}

	var quoted strings.Builder
	quoted.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			quoted.WriteString("'\\''")
		} else {
			quoted.WriteRune(r)
		}
	}
	quoted.WriteRune('\'')
	return quoted.String()
}

// isShellSafe returns true if the character is safe to use unquoted in shell.
//
// Parameters:
//   - r: Rune (character) to check
//
// Returns:
//   - bool: true if the character is safe to use unquoted, false otherwise
func isShellSafe(r rune) bool {
	// Safe: alphanumeric, dash, underscore, dot, slash, at, colon, plus, equal
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' ||
		r == '/' || r == '@' || r == ':' ||
		r == '+' || r == '='
}

// splitTokens parses a prefix string into argument tokens, respecting quotes.
//
// Quoted sections (single or double) are kept as one token even when they
// contain spaces, and backslash escapes before quotes, backslashes, and
// spaces are honored. This lets --prefix carry an interpreter invocation
// like 'python3.11 -m' or one with a quoted path.
//
// Parameters:
//   - s: Prefix string to split
//
// Returns:
//   - []string: Ordered argument tokens, empty for a blank prefix
func splitTokens(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)
	escaped := false

	for _, r := range s {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' && !inQuote {
			escaped = true
			continue
		}

		if r == '"' || r == '\'' {
			if !inQuote {
				inQuote = true
				quoteChar = r
				continue
			}
			if r == quoteChar {
				inQuote = false
				continue
			}
			current.WriteRune(r)
			continue
		}

		if !inQuote && (r == ' ' || r == '\t') {
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
			continue
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
