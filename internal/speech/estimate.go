package speech

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when a speaking rate or pause table is unusable.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Options configures a single estimation.
type Options struct {
	WPM           float64
	IncludePauses bool
	// Pauses overrides the pause durations. Nil means DefaultPauseTable.
	Pauses PauseTable
}

// Breakdown is the itemized result of an estimation.
type Breakdown struct {
	Words      int
	PauseUnits int
	BaseMs     float64
	PauseMs    int64
	TotalMs    int64
}

// Estimate returns the estimated speaking time of text in milliseconds,
// rounded to the nearest millisecond.
func Estimate(text string, opts Options) (int64, error) {
	b, err := Analyze(text, opts)
	if err != nil {
		return 0, err
	}
	return b.TotalMs, nil
}

// Analyze computes the estimate along with the values it was derived from.
func Analyze(text string, opts Options) (Breakdown, error) {
	if err := validateOptions(opts); err != nil {
		return Breakdown{}, err
	}
	b := Breakdown{Words: CountWords(text)}
	b.BaseMs = float64(b.Words) / opts.WPM * 60000
	total := b.BaseMs
	if opts.IncludePauses {
		table := opts.Pauses
		if table == nil {
			table = DefaultPauseTable()
		}
		b.PauseMs, b.PauseUnits = scanPauses(text, table)
		total += float64(b.PauseMs)
	}
	total = math.Round(total)
	if math.IsInf(total, 0) || total >= math.MaxInt64 {
		return Breakdown{}, fmt.Errorf("%w: wpm %v is too low to estimate %d words", ErrInvalidConfiguration, opts.WPM, b.Words)
	}
	b.TotalMs = int64(total)
	return b, nil
}

func validateOptions(opts Options) error {
	if math.IsNaN(opts.WPM) || math.IsInf(opts.WPM, 0) {
		return fmt.Errorf("%w: wpm must be a finite number, got %v", ErrInvalidConfiguration, opts.WPM)
	}
	if opts.WPM <= 0 {
		return fmt.Errorf("%w: wpm must be > 0, got %v", ErrInvalidConfiguration, opts.WPM)
	}
	if opts.Pauses != nil {
		return opts.Pauses.Validate()
	}
	return nil
}
