// Package text formats help text for the airdrop commands.
package text

import (
	"strings"
)

// Indentation is the indentation applied to command examples.
const Indentation = `  `

// LongDesc dedents a raw-string long description. Every line loses its
// leading whitespace and the whole text is trimmed.
func LongDesc(s string) string {
	lines := dedent(s)
	if lines == nil {
		return ""
	}

	return strings.Join(lines, "\n")
}

// Examples dedents a raw-string examples block and indents every non-empty
// line by Indentation, the layout cobra prints examples with.
func Examples(s string) string {
	lines := dedent(s)
	for i, line := range lines {
		if line != "" {
			lines[i] = Indentation + line
		}
	}

	return strings.Join(lines, "\n")
}

func dedent(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return lines
}
