package ui

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestTokenForeground_Set(t *testing.T) {
	t.Parallel()
	entry := chroma.StyleEntry{Colour: chroma.MustParseColour("#ff0000")}
	if got := tokenForeground(entry); got != "#ff0000" {
		t.Errorf("tokenForeground=%q, want #ff0000", got)
	}
}

func TestTokenForeground_Unset(t *testing.T) {
	t.Parallel()
	entry := chroma.StyleEntry{}
	got := tokenForeground(entry)
	if got != "" {
		t.Errorf("expected empty foreground for unset colour, got %q", got)
	}
}

func TestHighlightLine_Empty(t *testing.T) {
	t.Parallel()
	got := highlightLine("", "vars.css", "", chromaStyle("github"))
	if got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestHighlightLine_NilStyle(t *testing.T) {
	t.Parallel()
	if got := highlightLine("a { }", "vars.css", "", nil); got != "a { }" {
		t.Errorf("nil style should pass content through, got %q", got)
	}
}

func TestHighlightCSS_KeepsText(t *testing.T) {
	t.Parallel()
	css := "[data-template=\"gym\"] {\n  --primary: #ff5500;\n}\n"
	got := HighlightCSS(css, "github-dark", "#0d1117")
	if got == "" {
		t.Fatal("expected highlighted output")
	}
	plain := ansi.Strip(got)
	if plain != strings.TrimRight(css, "\n") {
		t.Errorf("stripped output = %q", plain)
	}
	if !strings.Contains(plain, "--primary") {
		t.Error("variable name lost")
	}
}

func TestChromaStyle_Fallback(t *testing.T) {
	t.Parallel()
	if chromaStyle("no-such-style") != chromaStyle("monokai") {
		t.Error("unknown styles should fall back to monokai")
	}
}
