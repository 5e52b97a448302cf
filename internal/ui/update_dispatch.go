package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jansmrcka/vitrine/internal/mode"
	"github.com/jansmrcka/vitrine/internal/registry"
	"github.com/jansmrcka/vitrine/internal/theme"
)

// Update stays dispatcher-only; behavior lives in focused helpers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case modeChangedMsg:
		return m.handleModeChanged()
	case frameMsg:
		return m.handleFrame()
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.resizeCSS()
	m.ready = true
	return m, nil
}

// handleModeChanged re-bases the stylesheet on the new mode and starts the
// frame ticker when a transition began.
func (m Model) handleModeChanged() (tea.Model, tea.Cmd) {
	st := m.modes.State()
	m.sheet.SetBase(theme.ForMode(st.Mode).BaseVars())
	m.refreshCSS()

	cmds := []tea.Cmd{waitForModeChange(m.wake)}
	if st.Transitioning && !m.animating {
		m.animating = true
		cmds = append(cmds, frameTick())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.modes.IsTransitioning() {
		return m, frameTick()
	}
	m.animating = false
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextScheme):
		return m.cycleScheme(1), nil
	case key.Matches(msg, m.keys.PrevScheme):
		return m.cycleScheme(-1), nil
	case key.Matches(msg, m.keys.PickScheme):
		return m.pickScheme(int(msg.String()[0] - '1')), nil
	case key.Matches(msg, m.keys.NextTemplate):
		return m.switchTemplate(1), nil
	case key.Matches(msg, m.keys.PrevTemplate):
		return m.switchTemplate(-1), nil
	case key.Matches(msg, m.keys.Toggle):
		m.modes.ToggleAt(m.toggleOrigin())
		return m, nil
	case key.Matches(msg, m.keys.ToggleNow):
		m.modes.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.modes.Reset()
		m.statusMsg = "following system preference"
		return m, nil
	case key.Matches(msg, m.keys.CSS):
		m.showCSS = !m.showCSS
		m.resizeCSS()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeCSS()
		return m, nil
	}
	if m.showCSS {
		if msg.String() == "esc" {
			m.showCSS = false
			return m, nil
		}
		var cmd tea.Cmd
		m.cssView, cmd = m.cssView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		if m.showCSS {
			var cmd tea.Cmd
			m.cssView, cmd = m.cssView.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if msg.Y != headerRow {
		return m, nil
	}

	layout := m.headerLayout()
	if layout.toggle.contains(msg.X) {
		m.statusMsg = ""
		m.modes.ToggleAt(mode.Origin{X: msg.X, Y: msg.Y})
		return m, nil
	}
	for _, chip := range layout.chips {
		if chip.contains(msg.X) {
			return m.selectScheme(chip.id), nil
		}
	}
	return m, nil
}

func (m Model) toggleOrigin() mode.Origin {
	t := m.headerLayout().toggle
	return mode.Origin{X: (t.x0 + t.x1) / 2, Y: headerRow}
}

func (m Model) cycleScheme(delta int) Model {
	list := m.handle.AvailableSchemes()
	cur := m.template().Index(m.handle.CurrentScheme().ID)
	next := ((cur+delta)%len(list) + len(list)) % len(list)
	return m.selectScheme(list[next].ID)
}

func (m Model) pickScheme(i int) Model {
	list := m.handle.AvailableSchemes()
	if i < 0 || i >= len(list) {
		return m
	}
	return m.selectScheme(list[i].ID)
}

func (m Model) selectScheme(id string) Model {
	m.handle.SetScheme(id)
	m.statusMsg = "scheme: " + m.handle.CurrentScheme().Name
	m.refreshCSS()
	return m
}

// switchTemplate unmounts the current template, retracting its variables,
// and mounts the neighbour in the given direction.
func (m Model) switchTemplate(delta int) Model {
	n := len(m.templates)
	if n < 2 {
		return m
	}
	next := ((m.current+delta)%n + n) % n

	m.handle.Teardown()
	h, err := registry.Activate(m.templates[next], m.sheet, registry.WithLogger(m.log))
	if err != nil {
		m.log.Error().Err(err).Str("template", m.templates[next].ID).Msg("activating template")
		m.statusMsg = "cannot open " + m.templates[next].Name
		h, err = registry.Activate(m.template(), m.sheet, registry.WithLogger(m.log))
		if err != nil {
			return m
		}
		m.handle = h
		return m
	}
	m.current = next
	m.handle = h
	m.statusMsg = m.template().Name
	m.refreshCSS()
	if m.showCSS {
		m.cssView.GotoTop()
	}
	return m
}

func (m *Model) resizeCSS() {
	if !m.showCSS || m.width == 0 {
		return
	}
	w, h := m.cssPanelSize()
	m.cssView = viewport.New(w, h)
	m.refreshCSS()
}

func (m *Model) refreshCSS() {
	if !m.showCSS {
		return
	}
	m.cssView.SetContent(m.renderCSS(m.chrome()))
}
