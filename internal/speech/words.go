// Package speech estimates how long text takes to read aloud.
package speech

import "strings"

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}
