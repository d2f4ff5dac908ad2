package task

import (
	"strings"
)

// firstLine returns the first line of content, marking that more follows
func firstLine(content string) string {
	line, rest, found := strings.Cut(content, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return line + " …"
	}
	return line
}
