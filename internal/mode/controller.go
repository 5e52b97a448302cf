package mode

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Transition timing.
const (
	DefaultDuration   = 800 * time.Millisecond
	DefaultFrameDelay = 16 * time.Millisecond
)

// Options configures a Controller. Every field is optional.
type Options struct {
	// Store persists explicit choices. Nil means session-only.
	Store Store
	// Preference supplies the system color-scheme preference.
	Preference Preference
	// Clock schedules transition callbacks. Defaults to SystemClock.
	Clock Clock
	// Duration bounds a transition; the controller is idle again at most
	// this long after a transition starts.
	Duration time.Duration
	// FrameDelay is how long the mode flag flip is deferred after a
	// transition starts, so its first frame still shows the old mode.
	FrameDelay time.Duration
	Logger     *zerolog.Logger
}

// Controller is the single owner of the display mode and its transition.
// It is safe for concurrent use; state changes are applied in call order.
type Controller struct {
	mu sync.Mutex

	store     Store
	unsubPref func()
	pref      Preference
	clock     Clock
	log       zerolog.Logger

	duration   time.Duration
	frameDelay time.Duration

	mode     Mode
	target   Mode
	explicit bool

	transitioning bool
	origin        Origin
	from          Mode
	startedAt     time.Time

	// gen identifies the current transition; callbacks carrying an older
	// value belong to a superseded transition and do nothing.
	gen       uint64
	flipTimer Timer
	idleTimer Timer

	version   uint64
	listeners map[int]func(State)
	nextID    int
	closed    bool
}

// NewController resolves the initial mode and subscribes to preference
// changes. Initialization never fails: an unreadable store degrades the
// controller to session-only persistence.
func NewController(opts Options) *Controller {
	c := &Controller{
		store:      opts.Store,
		pref:       opts.Preference,
		clock:      opts.Clock,
		duration:   opts.Duration,
		frameDelay: opts.FrameDelay,
		log:        zerolog.Nop(),
		listeners:  make(map[int]func(State)),
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}
	if c.duration <= 0 {
		c.duration = DefaultDuration
	}
	if c.frameDelay <= 0 {
		c.frameDelay = DefaultFrameDelay
	}

	initial, source := c.resolveInitial()
	c.mode = initial
	c.target = initial
	c.explicit = source == SourceStored
	c.log.Debug().Str("mode", string(initial)).Str("source", string(source)).Msg("display mode initialized")

	if c.pref != nil {
		c.unsubPref = c.pref.OnChange(c.handlePreference)
	}
	return c
}

func (c *Controller) resolveInitial() (Mode, Source) {
	if c.store != nil {
		raw, ok, err := c.store.Get(StorageKey)
		switch {
		case err != nil:
			c.degrade(err)
		case ok:
			if m, valid := Parse(raw); valid {
				return m, SourceStored
			}
			c.log.Debug().Str("value", raw).Msg("ignoring malformed stored display mode")
		}
	}
	if c.pref != nil {
		if dark, ok := c.pref.PrefersDark(); ok {
			return FromDark(dark), SourceSystem
		}
	}
	return Light, SourceDefault
}

// Mode returns the current mode flag.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// IsDark reports whether the current mode is Dark.
func (c *Controller) IsDark() bool { return c.Mode().IsDark() }

// IsTransitioning reports whether a switch animation is in flight.
func (c *Controller) IsTransitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transitioning
}

// TransitionOrigin returns the in-flight transition's origin. ok is false
// when idle.
func (c *Controller) TransitionOrigin() (Origin, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.origin, c.transitioning
}

// Duration returns the transition bound.
func (c *Controller) Duration() time.Duration { return c.duration }

// Explicit reports whether the user has chosen a mode, in this session or
// a previous one.
func (c *Controller) Explicit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.explicit
}

// State returns a snapshot of the read surface.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SetMode switches to m immediately, without animation. Any in-flight
// transition ends at once.
func (c *Controller) SetMode(m Mode) {
	c.set(m, nil)
}

// SetModeAt switches to m with a transition anchored at origin.
func (c *Controller) SetModeAt(m Mode, origin Origin) {
	c.set(m, &origin)
}

// Toggle switches to the opposite mode without animation.
func (c *Controller) Toggle() {
	c.mu.Lock()
	next := c.target.Opposite()
	c.mu.Unlock()
	c.set(next, nil)
}

// ToggleAt switches to the opposite mode with a transition from origin.
func (c *Controller) ToggleAt(origin Origin) {
	c.mu.Lock()
	next := c.target.Opposite()
	c.mu.Unlock()
	c.set(next, &origin)
}

func (c *Controller) set(m Mode, origin *Origin) {
	if !m.Valid() {
		c.log.Debug().Str("mode", string(m)).Msg("ignoring invalid display mode")
		return
	}

	c.mu.Lock()
	if c.closed || m == c.target {
		c.mu.Unlock()
		return
	}

	c.cancelTimersLocked()
	c.explicit = true
	c.target = m

	if origin == nil {
		c.transitioning = false
		c.origin = Origin{}
		c.mode = m
	} else {
		c.transitioning = true
		c.from = c.mode
		c.origin = *origin
		c.startedAt = c.clock.Now()
		gen := c.gen
		c.flipTimer = c.clock.AfterFunc(c.frameDelay, func() { c.flip(gen) })
		c.idleTimer = c.clock.AfterFunc(c.duration, func() { c.finish(gen) })
	}

	c.persistLocked(m)
	st, ls := c.changedLocked()
	c.mu.Unlock()

	c.log.Debug().
		Str("mode", string(m)).
		Bool("animated", origin != nil).
		Msg("display mode set")
	notify(ls, st)
}

// flip applies the pending mode once the transition's first frame is out.
func (c *Controller) flip(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.transitioning || c.mode == c.target {
		c.mu.Unlock()
		return
	}
	c.flipTimer = nil
	c.mode = c.target
	st, ls := c.changedLocked()
	c.mu.Unlock()
	notify(ls, st)
}

// finish returns the controller to idle at the end of a transition.
func (c *Controller) finish(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.transitioning {
		c.mu.Unlock()
		return
	}
	if c.flipTimer != nil {
		c.flipTimer.Stop()
		c.flipTimer = nil
	}
	c.idleTimer = nil
	c.gen++
	c.transitioning = false
	c.origin = Origin{}
	c.mode = c.target
	st, ls := c.changedLocked()
	c.mu.Unlock()
	notify(ls, st)
}

func (c *Controller) handlePreference(dark bool) {
	c.mu.Lock()
	m := FromDark(dark)
	if c.closed || c.explicit || m == c.target {
		c.mu.Unlock()
		return
	}
	c.mode = m
	c.target = m
	st, ls := c.changedLocked()
	c.mu.Unlock()

	c.log.Debug().Str("mode", string(m)).Msg("following system preference")
	notify(ls, st)
}

// Reset forgets the explicit choice, removes it from the store when the
// store supports deletion, and follows the system preference again.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelTimersLocked()
	c.transitioning = false
	c.origin = Origin{}
	c.explicit = false

	if d, ok := c.store.(Deleter); ok {
		if err := d.Delete(StorageKey); err != nil {
			c.degrade(err)
		}
	}

	m := c.mode
	if c.pref != nil {
		if dark, ok := c.pref.PrefersDark(); ok {
			m = FromDark(dark)
		}
	}
	c.mode = m
	c.target = m
	st, ls := c.changedLocked()
	c.mu.Unlock()
	notify(ls, st)
}

// Subscribe registers fn for every observable change. fn runs on the
// goroutine that caused the change and must not block.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Close cancels pending timers, drops listeners and stops following the
// system preference. The controller keeps its last mode.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelTimersLocked()
	if c.transitioning {
		c.transitioning = false
		c.origin = Origin{}
		c.mode = c.target
	}
	c.listeners = make(map[int]func(State))
	unsub := c.unsubPref
	c.unsubPref = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (c *Controller) cancelTimersLocked() {
	if c.flipTimer != nil {
		c.flipTimer.Stop()
		c.flipTimer = nil
	}
	if c.idleTimer != nil {
		c.idleTimer.Stop()
		c.idleTimer = nil
	}
	c.gen++
}

func (c *Controller) persistLocked(m Mode) {
	if c.store == nil {
		return
	}
	if err := c.store.Set(StorageKey, string(m)); err != nil {
		c.degrade(err)
	}
}

// degrade drops the store for the rest of the session.
func (c *Controller) degrade(err error) {
	c.log.Warn().Err(err).Msg("display mode persistence unavailable, continuing in memory")
	c.store = nil
}

func (c *Controller) snapshotLocked() State {
	st := State{
		Mode:          c.mode,
		Transitioning: c.transitioning,
		Version:       c.version,
	}
	if c.transitioning {
		st.Origin = c.origin
		st.From = c.from
		st.To = c.target
		st.StartedAt = c.startedAt
	}
	return st
}

func (c *Controller) changedLocked() (State, []func(State)) {
	c.version++
	ls := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		ls = append(ls, fn)
	}
	return c.snapshotLocked(), ls
}

func notify(ls []func(State), st State) {
	for _, fn := range ls {
		fn(st)
	}
}
