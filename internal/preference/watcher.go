package preference

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is how often a Watcher polls its chain.
const DefaultInterval = 2 * time.Second

// Watcher follows a detector chain and reports changes. It satisfies the
// display-mode controller's Preference dependency.
type Watcher struct {
	chain    Chain
	interval time.Duration
	log      zerolog.Logger

	mu        sync.Mutex
	dark      bool
	known     bool
	source    string
	listeners map[int]func(bool)
	nextID    int
	running   bool

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher takes an initial reading of chain.
func NewWatcher(chain Chain, interval time.Duration, log zerolog.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := &Watcher{
		chain:     chain,
		interval:  interval,
		log:       log,
		listeners: make(map[int]func(bool)),
		stopCh:    make(chan struct{}),
	}
	w.dark, w.source, w.known = chain.Detect()
	w.log.Debug().Bool("dark", w.dark).Bool("known", w.known).Str("source", w.source).Msg("system preference detected")
	return w
}

// PrefersDark returns the last reading.
func (w *Watcher) PrefersDark() (bool, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dark, w.known
}

// Source names the detector behind the last reading.
func (w *Watcher) Source() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.source
}

// OnChange registers fn and returns a function that unregisters it.
func (w *Watcher) OnChange(fn func(dark bool)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// Start begins polling in a goroutine. Calling it again is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.loop()
}

// Stop halts polling. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

func (w *Watcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}

// Poll re-reads the chain now and notifies listeners when the preference
// changed. It reports whether it did.
func (w *Watcher) Poll() bool {
	dark, source, ok := w.chain.Detect()

	w.mu.Lock()
	if !ok {
		// A source going quiet keeps the last answer.
		w.mu.Unlock()
		return false
	}
	changed := !w.known || dark != w.dark
	w.dark, w.known, w.source = dark, true, source
	var fns []func(bool)
	if changed {
		fns = make([]func(bool), 0, len(w.listeners))
		for _, fn := range w.listeners {
			fns = append(fns, fn)
		}
	}
	w.mu.Unlock()

	if changed {
		w.log.Debug().Bool("dark", dark).Str("source", source).Msg("system preference changed")
		for _, fn := range fns {
			fn(dark)
		}
	}
	return changed
}
