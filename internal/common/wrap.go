package common

import "strings"

// IsAlnum reports whether r is an ASCII letter or digit. Option matching and
// token classification deliberately use the C locale rules rather than
// unicode classes.
func IsAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Wrap folds text into lines of at most width columns, breaking only at
// whitespace. A single word longer than width occupies a line of its own.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
