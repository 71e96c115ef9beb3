package trace

import "strings"

// Split splits a comma-separated argument list the way a reader would:
// commas inside quotes or brackets do not split, and each name is trimmed.
// A backslash escapes the next character inside double or single quotes.
// A blank list has no names.
//
//	Split(`a, f(b, c), "x,y"`) == []string{"a", "f(b, c)", `"x,y"`}
func Split(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var (
		names  []string
		depth  int
		quote  rune
		escape bool
		start  int
	)
	for i, c := range s {
		switch {
		case escape:
			escape = false
		case quote != 0:
			switch {
			case c == '\\' && quote != '`':
				escape = true
			case c == quote:
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			names = append(names, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	return append(names, strings.TrimSpace(s[start:]))
}
