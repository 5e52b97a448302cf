package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	lexerCache sync.Map // ext -> chroma.Lexer
	styleCache sync.Map // name -> *chroma.Style
)

// chromaStyle returns the named chroma style, falling back to monokai.
func chromaStyle(name string) *chroma.Style {
	if cached, ok := styleCache.Load(name); ok {
		return cached.(*chroma.Style)
	}
	style := styles.Get(name)
	if style == nil || style == styles.Fallback {
		style = styles.Get("monokai")
	}
	styleCache.Store(name, style)
	return style
}

// getLexer returns a cached Chroma lexer for the given filename.
func getLexer(filename string) chroma.Lexer {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = filepath.Base(filename)
	}

	if cached, ok := lexerCache.Load(ext); ok {
		return cached.(chroma.Lexer)
	}

	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	lexerCache.Store(ext, lexer)
	return lexer
}

// HighlightCSS highlights a stylesheet line by line with the named chroma
// style. bgColor, when set, is kept behind every token.
func HighlightCSS(css, styleName, bgColor string) string {
	style := chromaStyle(styleName)
	lines := strings.Split(strings.TrimRight(css, "\n"), "\n")
	for i, line := range lines {
		lines[i] = highlightLine(line, "vars.css", bgColor, style)
	}
	return strings.Join(lines, "\n")
}

// highlightLine applies syntax highlighting to one line.
// It applies Chroma foreground colors but preserves the background from bgColor.
func highlightLine(content, filename, bgColor string, style *chroma.Style) string {
	if style == nil || content == "" {
		return content
	}

	lexer := getLexer(filename)
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var b strings.Builder
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		fg := tokenForeground(entry)
		if fg != "" {
			s := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
			if bgColor != "" {
				s = s.Background(lipgloss.Color(bgColor))
			}
			b.WriteString(s.Render(token.Value))
		} else if bgColor != "" {
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(bgColor)).Render(token.Value))
		} else {
			b.WriteString(token.Value)
		}
	}
	return b.String()
}

// tokenForeground extracts the hex foreground color from a chroma style entry.
func tokenForeground(entry chroma.StyleEntry) string {
	if entry.Colour.IsSet() {
		return fmt.Sprintf("#%06x", entry.Colour&0xFFFFFF)
	}
	return ""
}
