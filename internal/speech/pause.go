package speech

import (
	"fmt"
	"unicode"
)

const (
	// DefaultSentencePauseMs is the pause after sentence-ending punctuation.
	DefaultSentencePauseMs int64 = 350
	// DefaultClausePauseMs is the pause after clause-separating punctuation.
	DefaultClausePauseMs int64 = 175
)

const (
	sentenceEndRunes = ".!?…"
	clauseRunes      = ",;:"
)

// PauseTable maps punctuation runes to the pause they add, in milliseconds.
type PauseTable map[rune]int64

// DefaultPauseTable returns a new table with the default pause durations.
func DefaultPauseTable() PauseTable {
	return NewPauseTable(DefaultSentencePauseMs, DefaultClausePauseMs)
}

// NewPauseTable builds a table from a sentence-end and a clause pause.
func NewPauseTable(sentenceMs, clauseMs int64) PauseTable {
	table := make(PauseTable, len(sentenceEndRunes)+len(clauseRunes))
	for _, r := range sentenceEndRunes {
		table[r] = sentenceMs
	}
	for _, r := range clauseRunes {
		table[r] = clauseMs
	}
	return table
}

// Validate reports an error when any pause is negative.
func (t PauseTable) Validate() error {
	for r, ms := range t {
		if ms < 0 {
			return fmt.Errorf("%w: pause for %q must be >= 0, got %d", ErrInvalidConfiguration, r, ms)
		}
	}
	return nil
}

// PauseMs returns the total pause time for the punctuation in text.
// A run of adjacent punctuation counts once, using the longest pause in it.
func PauseMs(text string, table PauseTable) int64 {
	total, _ := scanPauses(text, table)
	return total
}

// pauseRun is one contiguous punctuation run found by scanRuns.
type pauseRun struct {
	end         int // rune index just past the run
	ms          int64
	sentenceEnd bool
}

func scanPauses(text string, table PauseTable) (int64, int) {
	var total int64
	runs := scanRuns([]rune(text), table)
	for _, run := range runs {
		total += run.ms
	}
	return total, len(runs)
}

func scanRuns(runes []rune, table PauseTable) []pauseRun {
	var runs []pauseRun
	inRun := false
	var current pauseRun
	for i, r := range runes {
		ms, ok := table[r]
		if ok && isNumberSeparator(runes, i) {
			ok = false
		}
		if !ok {
			if inRun {
				current.end = i
				runs = append(runs, current)
				inRun = false
			}
			continue
		}
		if !inRun {
			current = pauseRun{}
			inRun = true
		}
		if ms > current.ms {
			current.ms = ms
		}
		if isSentenceEnd(r) {
			current.sentenceEnd = true
		}
	}
	if inRun {
		current.end = len(runes)
		runs = append(runs, current)
	}
	return runs
}

func isSentenceEnd(r rune) bool {
	for _, s := range sentenceEndRunes {
		if r == s {
			return true
		}
	}
	return false
}

// isNumberSeparator reports whether the rune at i is a '.' or ',' inside a number.
func isNumberSeparator(runes []rune, i int) bool {
	if runes[i] != '.' && runes[i] != ',' {
		return false
	}
	if i == 0 || i == len(runes)-1 {
		return false
	}
	return unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}
