package sqb

import "strings"

// inlined collapses an indented multi-line statement into the single-line
// form the builder renders.
func inlined(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
