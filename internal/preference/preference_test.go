package preference

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value    string
		wantDark bool
		wantOK   bool
	}{
		{"dark", true, true},
		{"Light", false, true},
		{" DARK ", true, true},
		{"", false, false},
		{"auto", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			dark, ok := Env{Getenv: env(map[string]string{EnvVar: tt.value})}.Detect()
			assert.Equal(t, tt.wantDark, dark)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestColorFGBG(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value    string
		wantDark bool
		wantOK   bool
	}{
		{"15;0", true, true},
		{"0;15", false, true},
		{"0;default;15", false, true},
		{"7;8", true, true},
		{"0;7", false, true},
		{"", false, false},
		{"15;default", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			dark, ok := ColorFGBG{Getenv: env(map[string]string{"COLORFGBG": tt.value})}.Detect()
			assert.Equal(t, tt.wantDark, dark)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDesktop(t *testing.T) {
	t.Parallel()
	reply := func(out string, err error) func(string, ...string) ([]byte, error) {
		return func(string, ...string) ([]byte, error) { return []byte(out), err }
	}
	tests := []struct {
		name     string
		d        Desktop
		wantDark bool
		wantOK   bool
	}{
		{"gnome dark", Desktop{GOOS: "linux", Run: reply("'prefer-dark'\n", nil)}, true, true},
		{"gnome light", Desktop{GOOS: "linux", Run: reply("'prefer-light'\n", nil)}, false, true},
		{"gnome default", Desktop{GOOS: "linux", Run: reply("'default'\n", nil)}, false, false},
		{"no gsettings", Desktop{GOOS: "linux", Run: reply("", errors.New("not found"))}, false, false},
		{"macos dark", Desktop{GOOS: "darwin", Run: reply("Dark\n", nil)}, true, true},
		{"macos light", Desktop{GOOS: "darwin", Run: reply("", errors.New("exit status 1"))}, false, true},
		{"other os", Desktop{GOOS: "plan9", Run: reply("dark", nil)}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dark, ok := tt.d.Detect()
			assert.Equal(t, tt.wantDark, dark)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestTerminalProbesOnce(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	d := &Terminal{Probe: func() (bool, bool) {
		calls.Add(1)
		return true, true
	}}
	for i := 0; i < 3; i++ {
		dark, ok := d.Detect()
		assert.True(t, dark)
		assert.True(t, ok)
	}
	assert.Equal(t, int32(1), calls.Load())
}

type stubDetector struct {
	name string
	mu   sync.Mutex
	dark bool
	ok   bool
}

func (s *stubDetector) Name() string { return s.name }

func (s *stubDetector) Detect() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark, s.ok
}

func (s *stubDetector) set(dark, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark, s.ok = dark, ok
}

func TestChainFirstAnswerWins(t *testing.T) {
	t.Parallel()
	chain := Chain{
		&stubDetector{name: "silent"},
		&stubDetector{name: "second", dark: true, ok: true},
		&stubDetector{name: "third", dark: false, ok: true},
	}
	dark, source, ok := chain.Detect()
	assert.True(t, ok)
	assert.True(t, dark)
	assert.Equal(t, "second", source)

	_, _, ok = Chain{&stubDetector{name: "silent"}}.Detect()
	assert.False(t, ok)
}

func TestWatcherPoll(t *testing.T) {
	t.Parallel()
	det := &stubDetector{name: "stub", dark: false, ok: true}
	w := NewWatcher(Chain{det}, time.Hour, zerolog.Nop())

	dark, ok := w.PrefersDark()
	require.True(t, ok)
	require.False(t, dark)

	var got []bool
	unsubscribe := w.OnChange(func(d bool) { got = append(got, d) })

	assert.False(t, w.Poll(), "unchanged reading")
	det.set(true, true)
	assert.True(t, w.Poll())
	det.set(false, false)
	assert.False(t, w.Poll(), "silent source keeps the last answer")
	dark, _ = w.PrefersDark()
	assert.True(t, dark)

	unsubscribe()
	det.set(false, true)
	assert.True(t, w.Poll())
	assert.Equal(t, []bool{true}, got)
	assert.Equal(t, "stub", w.Source())
}

func TestWatcherUnknownAtStart(t *testing.T) {
	t.Parallel()
	det := &stubDetector{name: "stub"}
	w := NewWatcher(Chain{det}, time.Hour, zerolog.Nop())
	_, ok := w.PrefersDark()
	assert.False(t, ok)

	det.set(false, true)
	assert.True(t, w.Poll(), "first answer counts as a change")
}

func TestWatcherStartStop(t *testing.T) {
	t.Parallel()
	det := &stubDetector{name: "stub", ok: true}
	w := NewWatcher(Chain{det}, 5*time.Millisecond, zerolog.Nop())

	changed := make(chan bool, 1)
	w.OnChange(func(d bool) {
		select {
		case changed <- d:
		default:
		}
	})
	w.Start()
	w.Start()
	defer w.Stop()

	det.set(true, true)
	select {
	case d := <-changed:
		assert.True(t, d)
	case <-time.After(time.Second):
		t.Fatal("watcher never reported the change")
	}

	w.Stop()
	w.Stop()
}
