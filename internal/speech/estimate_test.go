package speech

import (
	"errors"
	"math"
	"testing"
)

const sampleText = "Hello world. This is a test, with pauses!"

func TestEstimateScenario(t *testing.T) {
	got, err := Estimate(sampleText, Options{WPM: 130, IncludePauses: true})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	// 8 words at 130 WPM is 3692.3ms, plus 350+175+350 for ". , !".
	if got != 4567 {
		t.Fatalf("expected 4567ms, got %d", got)
	}
	formatted, err := FormatDuration(float64(got))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if formatted != "0:05" {
		t.Fatalf("expected 0:05, got %s", formatted)
	}
}

func TestEstimateEmptyText(t *testing.T) {
	opts := Options{WPM: 130, IncludePauses: true}
	for _, text := range []string{"", "   \n\t  "} {
		got, err := Estimate(text, opts)
		if err != nil {
			t.Fatalf("estimate %q: %v", text, err)
		}
		if got != 0 {
			t.Fatalf("expected 0ms for %q, got %d", text, got)
		}
	}
}

func TestEstimateWhitespaceInvariant(t *testing.T) {
	opts := Options{WPM: 130}
	a, err := Estimate("a b", opts)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	b, err := Estimate("a    b", opts)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if a != b {
		t.Fatalf("expected equal estimates, got %d and %d", a, b)
	}
}

func TestEstimateScalesInverselyWithWPM(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve"
	slow, err := Estimate(text, Options{WPM: 100})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	fast, err := Estimate(text, Options{WPM: 200})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if diff := math.Abs(float64(slow) - 2*float64(fast)); diff > 1 {
		t.Fatalf("expected doubling wpm to halve the estimate: slow=%d fast=%d", slow, fast)
	}
}

func TestEstimatePausesNeverDecrease(t *testing.T) {
	texts := []string{"", "plain words", sampleText, "Wait... what?! Fine, okay; go: now."}
	for _, text := range texts {
		without, err := Estimate(text, Options{WPM: 150})
		if err != nil {
			t.Fatalf("estimate: %v", err)
		}
		with, err := Estimate(text, Options{WPM: 150, IncludePauses: true})
		if err != nil {
			t.Fatalf("estimate: %v", err)
		}
		if with < without {
			t.Fatalf("pauses decreased estimate for %q: %d < %d", text, with, without)
		}
	}
}

func TestEstimateInvalidWPM(t *testing.T) {
	for _, wpm := range []float64{0, -1, -130, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Estimate(sampleText, Options{WPM: wpm})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("wpm %v: expected ErrInvalidConfiguration, got %v", wpm, err)
		}
	}
}

func TestEstimateInvalidPauseTable(t *testing.T) {
	_, err := Estimate(sampleText, Options{WPM: 130, IncludePauses: true, Pauses: NewPauseTable(350, -5)})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestAnalyzeBreakdown(t *testing.T) {
	b, err := Analyze(sampleText, Options{WPM: 130, IncludePauses: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if b.Words != 8 {
		t.Fatalf("expected 8 words, got %d", b.Words)
	}
	if b.PauseUnits != 3 {
		t.Fatalf("expected 3 pause units, got %d", b.PauseUnits)
	}
	if b.PauseMs != 875 {
		t.Fatalf("expected 875ms of pauses, got %d", b.PauseMs)
	}
	if math.Abs(b.BaseMs-3692.3077) > 0.001 {
		t.Fatalf("unexpected base ms %f", b.BaseMs)
	}
	if b.TotalMs != 4567 {
		t.Fatalf("expected total 4567, got %d", b.TotalMs)
	}
}

func TestAnalyzeWithoutPausesSkipsScan(t *testing.T) {
	b, err := Analyze(sampleText, Options{WPM: 130})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if b.PauseMs != 0 || b.PauseUnits != 0 {
		t.Fatalf("expected no pauses, got %d units / %dms", b.PauseUnits, b.PauseMs)
	}
	if b.TotalMs != 3692 {
		t.Fatalf("expected 3692ms, got %d", b.TotalMs)
	}
}

func TestEstimateTinyWPMOverflows(t *testing.T) {
	for _, wpm := range []float64{1e-300, 5e-324} {
		got, err := Estimate("hello world", Options{WPM: wpm})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("wpm %v: expected ErrInvalidConfiguration, got %d, %v", wpm, got, err)
		}
	}
}

func TestEstimateTinyWPMWithoutWords(t *testing.T) {
	got, err := Estimate("   ", Options{WPM: 5e-324})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0ms, got %d", got)
	}
}
