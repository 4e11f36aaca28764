package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cubehop/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 1, "hop")
	s.SetColored(5, 2, '█', core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, expected 3", len(lines))
	}
	if !strings.Contains(lines[1], "hop") {
		t.Errorf("line 1 = %q, expected it to contain %q", lines[1], "hop")
	}
	if !strings.Contains(lines[2], "█") {
		t.Errorf("line 2 = %q, expected the colored cell", lines[2])
	}
}
