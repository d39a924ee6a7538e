package preview

import (
	"strings"
	"testing"
)

func TestRenderPlainStyle(t *testing.T) {
	out, err := Render("# Title\n\nSome *emphasis* here.", "notty", 60)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Fatalf("expected heading text in output: %q", out)
	}
	if !strings.Contains(out, "emphasis") {
		t.Fatalf("expected body text in output: %q", out)
	}
}
