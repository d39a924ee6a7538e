package speech

import "strings"

// Sentences splits text after each punctuation run in table that contains
// one of . ! ? or …. Runes missing from table never split, matching how
// PauseMs scores the same text. Nil table means DefaultPauseTable.
// Segments are trimmed and empty ones are dropped.
func Sentences(text string, table PauseTable) []string {
	if table == nil {
		table = DefaultPauseTable()
	}
	runes := []rune(text)
	var out []string
	start := 0
	for _, run := range scanRuns(runes, table) {
		if !run.sentenceEnd {
			continue
		}
		out = appendSegment(out, runes[start:run.end])
		start = run.end
	}
	return appendSegment(out, runes[start:])
}

func appendSegment(out []string, runes []rune) []string {
	segment := strings.TrimSpace(string(runes))
	if segment == "" {
		return out
	}
	return append(out, segment)
}
