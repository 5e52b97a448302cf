// Package modetest provides deterministic fakes for the mode package's
// collaborators.
package modetest

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jansmrcka/vitrine/internal/mode"
)

// Clock is a manually advanced mode.Clock.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*timer

	// LeakyStop makes Stop report success without preventing the callback,
	// which simulates a timer that had already fired when it was cancelled.
	LeakyStop bool
}

type timer struct {
	c       *Clock
	at      time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	if !t.c.LeakyStop {
		t.stopped = true
	}
	return true
}

// NewClock returns a clock frozen at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) mode.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &timer{c: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, running every due callback in deadline
// order on the calling goroutine.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(end)
		if next == nil {
			c.now = end
			c.mu.Unlock()
			return
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()
		next.f()
	}
}

func (c *Clock) nextDueLocked(end time.Time) *timer {
	due := make([]*timer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.fired && !t.stopped && !t.at.After(end) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	return due[0]
}

// Pending counts timers that have neither fired nor been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// Preference is a controllable mode.Preference.
type Preference struct {
	mu        sync.Mutex
	dark      bool
	known     bool
	listeners map[int]func(bool)
	nextID    int
}

// NewPreference returns a preference reporting dark.
func NewPreference(dark bool) *Preference {
	return &Preference{dark: dark, known: true, listeners: make(map[int]func(bool))}
}

// UnknownPreference returns a preference that reports nothing.
func UnknownPreference() *Preference {
	return &Preference{listeners: make(map[int]func(bool))}
}

func (p *Preference) PrefersDark() (bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dark, p.known
}

func (p *Preference) OnChange(fn func(bool)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

// Emit changes the preference and notifies listeners.
func (p *Preference) Emit(dark bool) {
	p.mu.Lock()
	p.dark = dark
	p.known = true
	fns := make([]func(bool), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()
	for _, fn := range fns {
		fn(dark)
	}
}

// Listeners counts registered listeners.
func (p *Preference) Listeners() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

// ErrUnavailable is returned by FailingStore.
var ErrUnavailable = errors.New("store unavailable")

// FailingStore fails every call and counts them.
type FailingStore struct {
	mu         sync.Mutex
	Gets, Sets int
}

func (s *FailingStore) Get(string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gets++
	return "", false, ErrUnavailable
}

func (s *FailingStore) Set(string, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sets++
	return ErrUnavailable
}
