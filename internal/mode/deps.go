package mode

import "time"

// StorageKey is the key the explicit mode choice is persisted under.
const StorageKey = "display-mode"

// Store is a durable key-value store.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Deleter is implemented by stores that can forget a key.
type Deleter interface {
	Delete(key string) error
}

// Preference reports the host environment's preferred color scheme.
type Preference interface {
	// PrefersDark returns the current preference; ok is false when the
	// environment does not report one.
	PrefersDark() (dark bool, ok bool)
	// OnChange registers fn for preference changes and returns a function
	// that unregisters it.
	OnChange(fn func(dark bool)) (unsubscribe func())
}

// Timer is a cancellable single-shot callback.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
