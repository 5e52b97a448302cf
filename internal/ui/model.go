package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jansmrcka/vitrine/internal/mode"
	"github.com/jansmrcka/vitrine/internal/registry"
	"github.com/jansmrcka/vitrine/internal/scheme"
	"github.com/jansmrcka/vitrine/internal/stylevar"
	"github.com/jansmrcka/vitrine/internal/theme"
)

const (
	minWidth  = 48
	minHeight = 14
)

// ErrUnknownTemplate is returned when the requested template is not in the
// catalog.
var ErrUnknownTemplate = errors.New("unknown template")

// Messages
type modeChangedMsg struct{}

type frameMsg struct{}

// Options wires the model to the engine.
type Options struct {
	Catalog  scheme.Catalog
	Template string // template id; empty selects the first
	Scheme   string // initial scheme id; empty selects the template default

	Sheet *stylevar.Sheet
	Modes *mode.Controller
	// Clock must be the controller's clock so transition progress lines up.
	Clock  mode.Clock
	Logger zerolog.Logger
}

// Model is the Bubble Tea model for the template showcase.
type Model struct {
	templates []scheme.ThemeDefinition
	current   int
	handle    *registry.Handle

	sheet *stylevar.Sheet
	modes *mode.Controller
	clock mode.Clock
	log   zerolog.Logger

	wake        chan struct{}
	unsubscribe func()
	animating   bool

	keys      keyMap
	help      help.Model
	cssView   viewport.Model
	showCSS   bool
	statusMsg string
	width     int
	height    int
	ready     bool
}

// NewModel activates the requested template and subscribes to mode changes.
func NewModel(opts Options) (Model, error) {
	templates := opts.Catalog.Definitions()
	if len(templates) == 0 {
		return Model{}, fmt.Errorf("%w: catalog is empty", ErrUnknownTemplate)
	}
	if opts.Sheet == nil || opts.Modes == nil {
		return Model{}, errors.New("ui: sheet and mode controller are required")
	}

	current := 0
	if opts.Template != "" {
		current = -1
		for i, def := range templates {
			if def.ID == opts.Template {
				current = i
				break
			}
		}
		if current < 0 {
			return Model{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, opts.Template)
		}
	}

	clock := opts.Clock
	if clock == nil {
		clock = mode.SystemClock{}
	}

	m := Model{
		templates: templates,
		current:   current,
		sheet:     opts.Sheet,
		modes:     opts.Modes,
		clock:     clock,
		log:       opts.Logger,
		wake:      make(chan struct{}, 1),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}

	h, err := registry.Activate(templates[current], m.sheet,
		registry.WithLogger(m.log),
		registry.WithInitialScheme(opts.Scheme))
	if err != nil {
		return Model{}, err
	}
	m.handle = h

	m.sheet.SetBase(theme.ForMode(m.modes.Mode()).BaseVars())
	wake := m.wake
	m.unsubscribe = m.modes.Subscribe(func(mode.State) {
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return waitForModeChange(m.wake)
}

// Close tears down the active template and stops listening to the
// controller. Call it on the final model after the program exits.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.handle != nil {
		m.handle.Teardown()
	}
}

// Handle returns the active template's registry handle.
func (m Model) Handle() *registry.Handle { return m.handle }

// waitForModeChange blocks until the controller reports a change.
func waitForModeChange(wake <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-wake
		return modeChangedMsg{}
	}
}

func (m Model) template() scheme.ThemeDefinition {
	return m.templates[m.current]
}

func (m Model) chrome() theme.Theme {
	return theme.ForMode(m.modes.Mode())
}
