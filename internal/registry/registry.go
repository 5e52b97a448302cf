// Package registry binds a theme definition to one mounted template instance
// and keeps that instance's published style variables in step with its active
// color scheme.
package registry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jansmrcka/vitrine/internal/scheme"
	"github.com/jansmrcka/vitrine/internal/stylevar"
)

// Publisher receives the style variables of a scope.
type Publisher interface {
	Publish(scope stylevar.Scope, vars map[string]string)
	Retract(scope stylevar.Scope)
}

// Option customizes Activate.
type Option func(*options)

type options struct {
	log     zerolog.Logger
	initial string
}

// WithLogger sets the handle's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithInitialScheme starts on id instead of the theme default. An id the
// theme does not define is ignored.
func WithInitialScheme(id string) Option {
	return func(o *options) { o.initial = id }
}

// Handle is the consumer surface of one activation.
type Handle struct {
	mu      sync.Mutex
	def     scheme.ThemeDefinition
	pub     Publisher
	scope   stylevar.Scope
	current scheme.ColorScheme
	active  bool
	log     zerolog.Logger
}

// Activate resolves the initial scheme of def, publishes all of its roles
// under a fresh scope and returns the handle. A definition without schemes,
// or with a scheme that leaves a role empty, is a configuration bug and
// fails before anything is published. The handle keeps its own copy of the
// schemes.
func Activate(def scheme.ThemeDefinition, pub Publisher, opts ...Option) (*Handle, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := def.CheckSchemes(); err != nil {
		return nil, fmt.Errorf("activating theme %q: %w", def.ID, err)
	}
	def.Schemes = def.SchemeList()
	initial, err := def.InitialScheme()
	if err != nil {
		return nil, fmt.Errorf("activating theme %q: %w", def.ID, err)
	}
	if o.initial != "" {
		if s, ok := def.Scheme(o.initial); ok {
			initial = s
		} else {
			o.log.Debug().Str("theme", def.ID).Str("scheme", o.initial).Msg("unknown initial scheme, using default")
		}
	}

	h := &Handle{
		def:     def,
		pub:     pub,
		scope:   stylevar.Scope(uuid.NewString()),
		current: initial,
		active:  true,
	}
	h.log = o.log.With().Str("theme", def.ID).Str("scope", string(h.scope)).Logger()
	pub.Publish(h.scope, stylevar.RoleVars(initial))
	h.log.Debug().Str("scheme", initial.ID).Msg("theme activated")
	return h, nil
}

// CurrentScheme returns the active scheme.
func (h *Handle) CurrentScheme() scheme.ColorScheme {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// AvailableSchemes returns a copy of the theme's schemes.
func (h *Handle) AvailableSchemes() []scheme.ColorScheme {
	return h.def.SchemeList()
}

// ThemeName returns the theme's display name.
func (h *Handle) ThemeName() string { return h.def.Name }

// ThemeID returns the theme's id.
func (h *Handle) ThemeID() string { return h.def.ID }

// Scope returns the scope this handle publishes under.
func (h *Handle) Scope() stylevar.Scope { return h.scope }

// Active reports whether the handle has not been torn down.
func (h *Handle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// SetScheme switches to the scheme with the given id and republishes the
// complete role set. Unknown ids and the current id are ignored.
func (h *Handle) SetScheme(id string) {
	next, ok := h.def.Scheme(id)
	if !ok {
		h.log.Debug().Str("scheme", id).Msg("ignoring unknown scheme")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.active || next.ID == h.current.ID {
		return
	}
	h.current = next
	h.pub.Publish(h.scope, stylevar.RoleVars(next))
	h.log.Debug().Str("scheme", id).Msg("scheme switched")
}

// Teardown retracts every variable this handle published. Later calls on
// the handle do nothing.
func (h *Handle) Teardown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.active {
		return
	}
	h.active = false
	h.pub.Retract(h.scope)
	h.log.Debug().Msg("theme torn down")
}
