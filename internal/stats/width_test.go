package stats

import "testing"

func TestTerminalWidthFallback(t *testing.T) {
	if got := terminalWidthOf(-1); got != terminalWidthBackup {
		t.Fatalf("expected fallback width %d, got %d", terminalWidthBackup, got)
	}
}
