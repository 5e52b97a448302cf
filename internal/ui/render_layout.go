package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jansmrcka/vitrine/internal/mode"
	"github.com/jansmrcka/vitrine/internal/scheme"
	"github.com/jansmrcka/vitrine/internal/stylevar"
	"github.com/jansmrcka/vitrine/internal/theme"
)

// View composition and all rendering helpers.

const (
	headerRow   = 0
	brand       = " vitrine "
	toggleWidth = 9
)

func (m Model) View() string {
	if m.width == 0 || !m.ready {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: %dx%d", m.width, m.height, minWidth, minHeight)
	}
	st := m.modes.State()
	if !st.Transitioning {
		return m.renderFrame(st.Mode)
	}
	progress := st.Progress(m.clock.Now(), m.modes.Duration())
	return composite(m.renderFrame(st.From), m.renderFrame(st.To), st.Origin, revealRadius(progress, st.Origin, m.width, m.height))
}

// renderFrame draws the whole screen as it looks in display mode md.
func (m Model) renderFrame(md mode.Mode) string {
	t := theme.ForMode(md)
	s := NewStyles(t)
	rows := []string{
		m.renderHeader(s, md),
		m.renderContent(t, md),
		m.renderStatusBar(s),
		m.renderHelpBar(s),
	}
	return strings.Join(rows, "\n")
}

type span struct {
	x0, x1 int
	id     string
}

func (s span) contains(x int) bool { return x >= s.x0 && x < s.x1 }

type headerSpans struct {
	prefix string
	chips  []span
	labels []string
	toggle span
}

// headerLayout places the scheme chips and the mode toggle on the header
// row. Rendering and mouse hit-testing share it.
func (m Model) headerLayout() headerSpans {
	var l headerSpans
	l.prefix = brand + "│ " + m.template().Name + " │ "
	l.toggle = span{x0: m.width - toggleWidth - 1, x1: m.width - 1, id: "toggle"}

	x := lipgloss.Width(l.prefix)
	for i, s := range m.handle.AvailableSchemes() {
		label := fmt.Sprintf(" %d %s ", i+1, s.Name)
		w := lipgloss.Width(label)
		if x+w >= l.toggle.x0 {
			break
		}
		l.chips = append(l.chips, span{x0: x, x1: x + w, id: s.ID})
		l.labels = append(l.labels, label)
		x += w + 1
	}
	return l
}

func toggleLabel(md mode.Mode) string {
	if md.IsDark() {
		return " ☾ dark  "
	}
	return " ☀ light "
}

func (m Model) renderHeader(s Styles, md mode.Mode) string {
	l := m.headerLayout()
	current := m.handle.CurrentScheme().ID

	var b strings.Builder
	b.WriteString(s.Brand.Render(brand))
	b.WriteString(s.HeaderBar.Render(strings.TrimPrefix(l.prefix, brand)))
	x := lipgloss.Width(l.prefix)
	for i, chip := range l.chips {
		style := s.Chip
		if chip.id == current {
			style = s.ChipSelected
		}
		b.WriteString(style.Render(l.labels[i]))
		b.WriteString(s.HeaderBar.Render(" "))
		x = chip.x1 + 1
	}
	if gap := l.toggle.x0 - x; gap > 0 {
		b.WriteString(s.HeaderBar.Render(strings.Repeat(" ", gap)))
	}
	b.WriteString(s.Toggle.Render(toggleLabel(md)))
	b.WriteString(s.HeaderBar.Render(" "))
	return fitLine(b.String(), m.width, s.HeaderBar)
}

func (m Model) contentHeight() int {
	h := m.height - 2 - lipgloss.Height(m.help.View(m.keys))
	if h < 3 {
		h = 3
	}
	return h
}

// cssPanelSize is the inner size of the CSS card.
func (m Model) cssPanelSize() (int, int) {
	right := m.width - m.width/2
	return right - 2, m.contentHeight() - 2
}

func (m Model) renderContent(t theme.Theme, md mode.Mode) string {
	h := m.contentHeight()
	def := m.template()
	title := def.Name + " · " + m.handle.CurrentScheme().Name

	if !m.showCSS {
		page := renderPreview(m.pageVars(md), t.Base, def, m.handle.CurrentScheme(), m.width-2, h-2)
		return renderCard(t, title, page, false, m.width-2, h-2)
	}

	left := m.width / 2
	page := renderPreview(m.pageVars(md), t.Base, def, m.handle.CurrentScheme(), left-2, h-2)
	w, ch := m.cssPanelSize()
	css := m.cssView.View()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(t, title, page, false, left-2, h-2),
		renderCard(t, "CSS", css, true, w, ch),
	)
}

// pageVars resolves the template's variables against the base stylesheet
// of md. Outside a transition this equals the sheet's own resolution.
func (m Model) pageVars(md mode.Mode) map[string]string {
	vars := theme.ForMode(md).BaseVars()
	for k, v := range m.sheet.Overrides(m.handle.Scope()) {
		vars[k] = v
	}
	return vars
}

func (m Model) renderCSS(t theme.Theme) string {
	selector := fmt.Sprintf("[data-template=%q]", m.template().ID)
	return HighlightCSS(m.sheet.CSS(m.handle.Scope(), selector), t.ChromaStyle, "")
}

func renderCard(t theme.Theme, title, content string, focused bool, w, h int) string {
	borderColor := lipgloss.Color(t.BorderFg)
	if focused {
		borderColor = lipgloss.Color(t.AccentFg)
	}
	bg := lipgloss.Color(t.Bg)
	bs := lipgloss.NewStyle().Foreground(borderColor).Background(bg)
	titleStr := ""
	if title != "" {
		titleStr = " " + ansi.Truncate(title, max(0, w-3), "…") + " "
	}
	topFill := w - lipgloss.Width(titleStr) - 1
	if topFill < 0 {
		topFill = 0
	}
	top := bs.Render("╭─" + titleStr + strings.Repeat("─", topFill) + "╮")
	lines := strings.Split(content, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	fill := lipgloss.NewStyle().Background(bg)
	var rows []string
	for i := 0; i < h; i++ {
		rows = append(rows, bs.Render("│")+fitLine(lines[i], w, fill)+bs.Render("│"))
	}
	bottom := bs.Render("╰" + strings.Repeat("─", w) + "╯")
	return lipgloss.JoinVertical(lipgloss.Left, top, strings.Join(rows, "\n"), bottom)
}

// renderPreview draws a marketing page for def from resolved variables.
func renderPreview(vars map[string]string, canvas scheme.ColorScheme, def scheme.ThemeDefinition, cs scheme.ColorScheme, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	ps := newPageStyles(vars, canvas)
	var lines []string

	nav := " ◆ " + def.Name
	links := "Home  Services  Contact "
	if gap := w - lipgloss.Width(nav) - lipgloss.Width(links); gap > 0 {
		nav += strings.Repeat(" ", gap) + links
	}
	lines = append(lines, fitLine(ps.Nav.Render(nav), w, ps.Nav))

	hero := func(s string) string { return fitLine(ps.Hero.Render(s), w, ps.Hero) }
	lines = append(lines,
		hero(""),
		fitLine(ps.HeroTitle.Render("  "+def.Name), w, ps.Hero),
		hero("  "+def.Description),
		hero(""),
		fitLine(ps.Hero.Render("  ")+ps.Primary.Render("Book now")+ps.Hero.Render("  ")+ps.Secondary.Render("Learn more"), w, ps.Hero),
		hero(""),
		fitLine("", w, ps.Page),
	)

	cards := [][2]string{{"Services", "What we offer"}, {"About", "Who we are"}, {"Visit", "Find us"}}
	cardW := (w-4)/len(cards) - 2
	if cardW >= 8 {
		rendered := make([]string, 0, len(cards)*2)
		for i, c := range cards {
			if i > 0 {
				rendered = append(rendered, ps.Page.Render(" "))
			}
			body := ps.CardTitle.Render(c[0]) + "\n" + ps.Muted.Render(c[1])
			rendered = append(rendered, ps.Card.Width(cardW).Render(body))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
		for _, line := range strings.Split(row, "\n") {
			lines = append(lines, fitLine(ps.Page.Render(" ")+line, w, ps.Page))
		}
		lines = append(lines, fitLine("", w, ps.Page))
	}

	var swatches strings.Builder
	swatches.WriteString(ps.Page.Render(" "))
	for _, r := range scheme.Roles() {
		swatches.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(vars[stylevar.VarName(r)])).Render("  "))
	}
	lines = append(lines, fitLine(swatches.String(), w, ps.Page))

	footer := fitLine(ps.Footer.Render(" © "+def.Name+" · "+cs.Name), w, ps.Footer)
	for len(lines) < h-1 {
		lines = append(lines, fitLine("", w, ps.Page))
	}
	if len(lines) > h-1 {
		lines = lines[:max(h-1, 0)]
	}
	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar(s Styles) string {
	st := m.modes.State()
	left := fmt.Sprintf(" %s · %s · %s", m.template().Name, m.handle.CurrentScheme().Name, st.Mode)
	if st.Transitioning {
		left += " → " + string(st.To)
	}
	if !m.modes.Explicit() {
		left += " (system)"
	}
	if m.statusMsg != "" {
		left += "  " + m.statusMsg
	}
	right := fmt.Sprintf("%d/%d ", m.current+1, len(m.templates))
	if gap := m.width - lipgloss.Width(left) - lipgloss.Width(right); gap > 0 {
		left += strings.Repeat(" ", gap) + right
	}
	return fitLine(s.StatusBar.Render(left), m.width, s.StatusBar)
}

func (m Model) renderHelpBar(s Styles) string {
	h := m.help
	h.Styles = s.helpStyles()
	lines := strings.Split(h.View(m.keys), "\n")
	for i, line := range lines {
		lines[i] = fitLine(s.Canvas.Render(" ")+line, m.width, s.Canvas)
	}
	return strings.Join(lines, "\n")
}

// fitLine cuts or pads a styled line to exactly w cells.
func fitLine(line string, w int, fill lipgloss.Style) string {
	lw := ansi.StringWidth(line)
	if lw > w {
		return ansi.Truncate(line, w, "")
	}
	if lw < w {
		return line + fill.Render(strings.Repeat(" ", w-lw))
	}
	return line
}
