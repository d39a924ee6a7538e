package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuispeak/internal/model"
	"github.com/verte-zerg/tuispeak/internal/speech"
)

func newTestModel(text string) *Model {
	return NewModel(model.Config{
		Profile:         speech.ProfileNormal,
		IncludePauses:   true,
		SentencePauseMs: speech.DefaultSentencePauseMs,
		ClausePauseMs:   speech.DefaultClausePauseMs,
	}, text)
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel("Hello world. This is a test, with pauses!")
	out := m.renderFooter()
	if !containsAll(out, []string{"Words 8", "normal 130 WPM", "Pauses on (3)", "0:05"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestTogglePauses(t *testing.T) {
	m := newTestModel("Hello world. This is a test, with pauses!")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.config.IncludePauses {
		t.Fatalf("expected pauses to be disabled")
	}
	if m.breakdown.TotalMs != 3692 {
		t.Fatalf("expected 3692ms without pauses, got %d", m.breakdown.TotalMs)
	}
	if !strings.Contains(m.renderFooter(), "Pauses off") {
		t.Fatalf("expected pauses off in footer")
	}
}

func TestCycleProfileToCustomWithoutRate(t *testing.T) {
	m := newTestModel("one two three")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.config.Profile != speech.ProfileFast || m.wpm != 160 {
		t.Fatalf("expected fast profile, got %s at %d", m.config.Profile, m.wpm)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.config.Profile != speech.ProfileCustom {
		t.Fatalf("expected custom profile, got %s", m.config.Profile)
	}
	if m.errMsg == "" {
		t.Fatalf("expected a validation message for custom profile without rate")
	}
	if !strings.Contains(m.renderFooter(), "-:--") {
		t.Fatalf("expected placeholder duration, got %s", m.renderFooter())
	}
}

func TestCustomWPMInput(t *testing.T) {
	m := newTestModel("one two three")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if !m.wpmMode {
		t.Fatalf("expected wpm input mode")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.wpmMode || m.errMsg == "" {
		t.Fatalf("expected invalid input to keep the prompt open with an error")
	}

	m.wpmInput.SetValue("180")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.wpmMode {
		t.Fatalf("expected prompt to close")
	}
	if m.config.Profile != speech.ProfileCustom || m.config.CustomWPM != 180 {
		t.Fatalf("unexpected config: %+v", m.config)
	}
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if m.breakdown.TotalMs != 1000 {
		t.Fatalf("expected 1000ms at 180 WPM, got %d", m.breakdown.TotalMs)
	}
}

func TestTypingUpdatesEstimate(t *testing.T) {
	m := newTestModel("")
	if m.breakdown.Words != 0 {
		t.Fatalf("expected no words")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello there")})
	if m.Text() != "hello there" {
		t.Fatalf("unexpected text %q", m.Text())
	}
	if m.breakdown.Words != 2 {
		t.Fatalf("expected 2 words, got %d", m.breakdown.Words)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Text() != "" || m.breakdown.Words != 0 {
		t.Fatalf("expected cleared editor")
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestSummary(t *testing.T) {
	if got := newTestModel("  ").Summary(); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
	got := newTestModel("Hello world. This is a test, with pauses!").Summary()
	if got != "8 words at 130 WPM: 0:05" {
		t.Fatalf("unexpected summary %q", got)
	}
}
