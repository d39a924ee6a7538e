// Package stats builds and renders speaking-time reports for a text.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuispeak/internal/model"
	"github.com/verte-zerg/tuispeak/internal/speech"
)

const (
	pacingCells      = " ▁▂▃▄▅▆▇█"
	minSentenceWidth = 10
	ellipsis         = "…"
)

// PacingLine draws one cell per sentence, scaled from zero to the longest
// sentence so short sentences stay visibly short.
func PacingLine(segments []model.SegmentEstimate) string {
	var longest int64
	for _, seg := range segments {
		if seg.TotalMs > longest {
			longest = seg.TotalMs
		}
	}
	cells := []rune(pacingCells)
	var b strings.Builder
	for _, seg := range segments {
		idx := 0
		if longest > 0 {
			idx = int(math.Ceil(float64(seg.TotalMs) / float64(longest) * float64(len(cells)-1)))
		}
		b.WriteRune(cells[idx])
	}
	return b.String()
}

// RenderSummary prints totals for the whole text.
func RenderSummary(w io.Writer, r Report) error {
	if r.Breakdown.Words == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	total, err := speech.FormatDuration(float64(r.Breakdown.TotalMs))
	if err != nil {
		return err
	}
	pauses := "off"
	if r.Options.IncludePauses {
		pauses = fmt.Sprintf("%d (%d ms)", r.Breakdown.PauseUnits, r.Breakdown.PauseMs)
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Words: %d", r.Breakdown.Words),
		fmt.Sprintf("Sentences: %d", len(r.Segments)),
		fmt.Sprintf("Rate: %s (%.0f WPM)", r.Rate.Profile, r.Options.WPM),
		fmt.Sprintf("Pauses: %s", pauses),
		fmt.Sprintf("Estimated: %s (%d ms)", total, r.Breakdown.TotalMs),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderProfiles prints the estimate at each preset rate.
func RenderProfiles(w io.Writer, r Report) error {
	if len(r.Profiles) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Profiles"); err != nil {
		return err
	}
	headers := []string{"Profile", "WPM", "Duration", "ms"}
	rows := make([][]string, 0, len(r.Profiles))
	for _, p := range r.Profiles {
		formatted, err := speech.FormatDuration(float64(p.TotalMs))
		if err != nil {
			return err
		}
		name := p.Profile.String()
		if p.Profile == r.Rate.Profile {
			name += " *"
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", p.WPM),
			formatted,
			fmt.Sprintf("%d", p.TotalMs),
		})
	}
	return writeTable(w, headers, rows, map[int]bool{1: true, 2: true, 3: true})
}

// RenderBreakdown prints per-sentence estimates sized to totalWidth.
func RenderBreakdown(w io.Writer, r Report, totalWidth int) error {
	if len(r.Segments) == 0 {
		_, err := fmt.Fprintln(w, "No sentences found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Sentence"); err != nil {
		return err
	}
	headers := []string{"#", "Sentence", "Words", "Pause", "Time"}
	rows := make([][]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		formatted, err := speech.FormatDuration(float64(seg.TotalMs))
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", seg.Index+1),
			strings.Join(strings.Fields(seg.Text), " "),
			fmt.Sprintf("%d", seg.Words),
			fmt.Sprintf("%d", seg.PauseMs),
			formatted,
		})
	}
	fitColumn(headers, rows, 1, totalWidth)
	if err := writeTable(w, headers, rows, map[int]bool{0: true, 2: true, 3: true, 4: true}); err != nil {
		return err
	}

	pacing := PacingLine(r.Segments)
	if limit := totalWidth - len("Pacing: "); totalWidth > 0 && limit > 0 {
		pacing = runewidth.Truncate(pacing, limit, "")
	}
	if _, err := fmt.Fprintf(w, "Pacing: %s\n\n", pacing); err != nil {
		return err
	}
	return nil
}

// fitColumn truncates column col so that the table fits within totalWidth.
func fitColumn(headers []string, rows [][]string, col, totalWidth int) {
	if totalWidth <= 0 {
		return
	}
	widths := columnWidths(headers, rows)
	used := len(widths) - 1
	for i, w := range widths {
		if i != col {
			used += w
		}
	}
	limit := totalWidth - used
	if limit < minSentenceWidth {
		limit = minSentenceWidth
	}
	for _, row := range rows {
		if col < len(row) {
			row[col] = runewidth.Truncate(row[col], limit, ellipsis)
		}
	}
}

func writeTable(w io.Writer, headers []string, rows [][]string, rightAlign map[int]bool) error {
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
