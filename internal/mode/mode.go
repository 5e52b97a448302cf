// Package mode owns the application-wide light/dark display mode.
//
// A single Controller is created at startup and shared with every consumer.
// It resolves the initial mode, persists explicit choices, follows the system
// preference until the user picks a mode, and runs the short transition that
// animates a switch from the point the user clicked.
package mode

import "time"

// Mode is the global display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Parse accepts exactly "light" or "dark".
func Parse(s string) (Mode, bool) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), true
	}
	return "", false
}

// FromDark maps a dark-preference flag to a Mode.
func FromDark(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

// Valid reports whether m is Light or Dark.
func (m Mode) Valid() bool { return m == Light || m == Dark }

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool { return m == Dark }

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string { return string(m) }

// Origin is the screen cell a mode switch gesture started from.
type Origin struct {
	X, Y int
}

// State is a snapshot of the controller's read surface.
type State struct {
	// Mode is the flag consumers render with.
	Mode Mode
	// Transitioning is true while a switch animation is in flight.
	Transitioning bool
	// Origin anchors the animation. Only meaningful while Transitioning.
	Origin Origin
	// From and To are the modes the animation moves between.
	From, To Mode
	// StartedAt is when the in-flight transition began.
	StartedAt time.Time
	// Version increases with every observable change.
	Version uint64
}

// IsDark reports whether the current mode is Dark.
func (s State) IsDark() bool { return s.Mode.IsDark() }

// Progress returns how far the transition has run at now, in [0, 1].
// It is 1 when no transition is in flight.
func (s State) Progress(now time.Time, duration time.Duration) float64 {
	if !s.Transitioning || duration <= 0 {
		return 1
	}
	p := float64(now.Sub(s.StartedAt)) / float64(duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
