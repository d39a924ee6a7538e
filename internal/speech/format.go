package speech

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a duration cannot be formatted.
var ErrInvalidInput = errors.New("invalid input")

// FormatDuration renders milliseconds as M:SS, or H:MM:SS from one hour up.
// The value is rounded to the nearest whole second first.
func FormatDuration(ms float64) (string, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return "", fmt.Errorf("%w: duration must be finite, got %v", ErrInvalidInput, ms)
	}
	if ms < 0 {
		return "", fmt.Errorf("%w: duration must be >= 0, got %v", ErrInvalidInput, ms)
	}
	seconds := math.Round(ms / 1000)
	if seconds >= math.MaxInt64 {
		return "", fmt.Errorf("%w: duration %v ms is out of range", ErrInvalidInput, ms)
	}
	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs), nil
	}
	return fmt.Sprintf("%d:%02d", minutes, secs), nil
}
