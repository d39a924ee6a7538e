package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Profile", "WPM", "Duration"}
	rows := [][]string{
		{"slow", "100", "0:05"},
		{"normal *", "130", "12:04"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Profile  WPM Duration" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "slow     100     0:05" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "normal * 130    12:04" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Text", "N"}, [][]string{{"日本", "1"}, {"ab", "2"}}, nil)
	if lines[1] != "日本 1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "ab   2" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}

func TestFitColumnTruncates(t *testing.T) {
	headers := []string{"#", "Sentence", "Time"}
	rows := [][]string{{"1", "This sentence is far too long to fit in a narrow terminal.", "0:03"}}
	fitColumn(headers, rows, 1, 24)
	got := rows[0][1]
	if displayWidth(got) != 24-1-4-2 {
		t.Fatalf("expected truncated width %d, got %d (%q)", 24-1-4-2, displayWidth(got), got)
	}
	if got[len(got)-len(ellipsis):] != ellipsis {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
