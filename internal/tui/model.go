// Package tui provides the Bubble Tea live estimate editor.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuispeak/internal/model"
	"github.com/verte-zerg/tuispeak/internal/speech"
)

const helpText = "tab profile · ctrl+p pauses · ctrl+w custom wpm · ctrl+r clear · esc quit"

// Model implements the Bubble Tea editor UI.
type Model struct {
	config model.Config

	editor   textarea.Model
	wpmInput textinput.Model
	wpmMode  bool

	width  int
	height int

	breakdown speech.Breakdown
	wpm       int
	errMsg    string
}

var (
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	totalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	editorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1)
)

// NewModel constructs an editor model seeded with text.
func NewModel(cfg model.Config, text string) *Model {
	editor := textarea.New()
	editor.Placeholder = "Type or paste the text you want to read aloud..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetValue(text)
	editor.Focus()

	wpmInput := textinput.New()
	wpmInput.Prompt = "Custom WPM: "
	wpmInput.Placeholder = "e.g. 145"
	wpmInput.CharLimit = 5

	m := &Model{
		config:   cfg,
		editor:   editor,
		wpmInput: wpmInput,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.wpmMode {
			return m.updateWPMInput(msg)
		}
		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.cycleProfile()
			return m, nil
		case tea.KeyCtrlP:
			m.config.IncludePauses = !m.config.IncludePauses
			m.recompute()
			return m, nil
		case tea.KeyCtrlW:
			return m, m.startWPMInput()
		case tea.KeyCtrlR:
			m.editor.Reset()
			m.recompute()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.recompute()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{editorBorder.Render(m.editor.View())}
	if m.wpmMode {
		sections = append(sections, promptStyle.Render(m.wpmInput.View()))
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	sections = append(sections, m.renderFooter(), footerStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Text returns the current editor content.
func (m *Model) Text() string {
	return m.editor.Value()
}

// Summary describes the last estimate, or "" when there is nothing to report.
func (m *Model) Summary() string {
	if m.wpm == 0 || m.breakdown.Words == 0 {
		return ""
	}
	formatted, err := speech.FormatDuration(float64(m.breakdown.TotalMs))
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d words at %d WPM: %s", m.breakdown.Words, m.wpm, formatted)
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	frameW, frameH := editorBorder.GetFrameSize()
	width := m.width - frameW
	if width < 10 {
		width = 10
	}
	// Leave room for the prompt, error, footer and help lines.
	height := m.height - frameH - 4
	if height < 3 {
		height = 3
	}
	m.editor.SetWidth(width)
	m.editor.SetHeight(height)
}

func (m *Model) cycleProfile() {
	m.config.Profile = m.config.Profile.Next()
	m.recompute()
}

func (m *Model) startWPMInput() tea.Cmd {
	m.wpmMode = true
	m.editor.Blur()
	if m.config.CustomWPM > 0 {
		m.wpmInput.SetValue(fmt.Sprintf("%d", m.config.CustomWPM))
	} else {
		m.wpmInput.SetValue("")
	}
	return m.wpmInput.Focus()
}

func (m *Model) stopWPMInput() tea.Cmd {
	m.wpmMode = false
	m.wpmInput.Blur()
	return m.editor.Focus()
}

func (m *Model) updateWPMInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		cmd := m.stopWPMInput()
		m.recompute()
		return m, cmd
	case tea.KeyEnter:
		wpm, err := speech.ParseWPM(m.wpmInput.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.config.CustomWPM = wpm
		m.config.Profile = speech.ProfileCustom
		cmd := m.stopWPMInput()
		m.recompute()
		return m, cmd
	}
	var cmd tea.Cmd
	m.wpmInput, cmd = m.wpmInput.Update(msg)
	return m, cmd
}

// recompute refreshes the estimate from the current text and settings.
func (m *Model) recompute() {
	m.errMsg = ""
	opts, err := m.config.Options()
	if err != nil {
		m.setEstimateError(err)
		return
	}
	breakdown, err := speech.Analyze(m.editor.Value(), opts)
	if err != nil {
		m.setEstimateError(err)
		return
	}
	m.breakdown = breakdown
	m.wpm = int(opts.WPM)
}

func (m *Model) setEstimateError(err error) {
	m.breakdown = speech.Breakdown{}
	m.wpm = 0
	if errors.Is(err, speech.ErrInvalidConfiguration) && m.config.Profile == speech.ProfileCustom && m.config.CustomWPM <= 0 {
		m.errMsg = "custom profile needs a rate: press ctrl+w to set WPM"
		return
	}
	m.errMsg = err.Error()
}

func (m *Model) renderFooter() string {
	rate := m.config.Profile.String()
	if m.wpm > 0 {
		rate = fmt.Sprintf("%s %d WPM", rate, m.wpm)
	}
	pauses := "Pauses off"
	if m.config.IncludePauses {
		pauses = fmt.Sprintf("Pauses on (%d)", m.breakdown.PauseUnits)
	}
	segments := []string{
		fmt.Sprintf("Words %d", m.breakdown.Words),
		rate,
		pauses,
	}
	footer := footerStyle.Render(strings.Join(segments, "  ·  "))
	total := "-:--"
	if m.wpm > 0 {
		formatted, err := speech.FormatDuration(float64(m.breakdown.TotalMs))
		if err == nil {
			total = formatted
		}
	}
	return footer + "  " + totalStyle.Render(total)
}
