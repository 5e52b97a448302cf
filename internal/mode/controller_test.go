package mode_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansmrcka/vitrine/internal/mode"
	"github.com/jansmrcka/vitrine/internal/mode/modetest"
	"github.com/jansmrcka/vitrine/internal/prefs"
)

func newController(t *testing.T, store mode.Store, pref mode.Preference) (*mode.Controller, *modetest.Clock) {
	t.Helper()
	clock := modetest.NewClock()
	c := mode.NewController(mode.Options{
		Store:      store,
		Preference: pref,
		Clock:      clock,
	})
	t.Cleanup(c.Close)
	return c, clock
}

func storeWith(t *testing.T, value string) *prefs.MemoryStore {
	t.Helper()
	s := prefs.NewMemoryStore()
	require.NoError(t, s.Set(mode.StorageKey, value))
	return s
}

func stored(t *testing.T, s mode.Store) string {
	t.Helper()
	v, _, err := s.Get(mode.StorageKey)
	require.NoError(t, err)
	return v
}

func TestNewController_InitialMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		store    func(t *testing.T) mode.Store
		pref     mode.Preference
		want     mode.Mode
		explicit bool
	}{
		{
			name:     "stored value beats preference",
			store:    func(t *testing.T) mode.Store { return storeWith(t, "dark") },
			pref:     modetest.NewPreference(false),
			want:     mode.Dark,
			explicit: true,
		},
		{
			name:  "malformed stored value is absent",
			store: func(t *testing.T) mode.Store { return storeWith(t, "sepia") },
			pref:  modetest.NewPreference(true),
			want:  mode.Dark,
		},
		{
			name:  "stored value is case sensitive",
			store: func(t *testing.T) mode.Store { return storeWith(t, "Dark") },
			pref:  modetest.NewPreference(false),
			want:  mode.Light,
		},
		{
			name:  "preference when nothing stored",
			store: func(*testing.T) mode.Store { return prefs.NewMemoryStore() },
			pref:  modetest.NewPreference(true),
			want:  mode.Dark,
		},
		{
			name:  "light when preference unknown",
			store: func(*testing.T) mode.Store { return prefs.NewMemoryStore() },
			pref:  modetest.UnknownPreference(),
			want:  mode.Light,
		},
		{
			name:  "failing store falls through to preference",
			store: func(*testing.T) mode.Store { return &modetest.FailingStore{} },
			pref:  modetest.NewPreference(true),
			want:  mode.Dark,
		},
		{
			name:  "no collaborators",
			store: func(*testing.T) mode.Store { return nil },
			want:  mode.Light,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := newController(t, tt.store(t), tt.pref)
			assert.Equal(t, tt.want, c.Mode())
			assert.Equal(t, tt.want == mode.Dark, c.IsDark())
			assert.False(t, c.IsTransitioning())
			assert.Equal(t, tt.explicit, c.Explicit())
			_, ok := c.TransitionOrigin()
			assert.False(t, ok)
		})
	}
}

func TestController_ToggleAtScenario(t *testing.T) {
	t.Parallel()
	store := prefs.NewMemoryStore()
	c, clock := newController(t, store, modetest.NewPreference(true))

	require.Equal(t, mode.Dark, c.Mode())
	require.False(t, c.IsTransitioning())

	c.ToggleAt(mode.Origin{X: 120, Y: 40})

	assert.True(t, c.IsTransitioning())
	origin, ok := c.TransitionOrigin()
	require.True(t, ok)
	assert.Equal(t, mode.Origin{X: 120, Y: 40}, origin)

	clock.Advance(mode.DefaultDuration)

	assert.False(t, c.IsTransitioning())
	assert.Equal(t, mode.Light, c.Mode())
	assert.Equal(t, "light", stored(t, store))
}

func TestController_FlipDeferredOneFrame(t *testing.T) {
	t.Parallel()
	c, clock := newController(t, nil, modetest.NewPreference(false))

	c.SetModeAt(mode.Dark, mode.Origin{X: 3, Y: 4})
	st := c.State()
	assert.True(t, st.Transitioning)
	assert.Equal(t, mode.Light, st.Mode, "first frame still shows the old mode")
	assert.Equal(t, mode.Light, st.From)
	assert.Equal(t, mode.Dark, st.To)
	assert.Equal(t, clock.Now(), st.StartedAt)

	clock.Advance(mode.DefaultFrameDelay)
	st = c.State()
	assert.True(t, st.Transitioning)
	assert.Equal(t, mode.Dark, st.Mode)
	assert.Equal(t, mode.Origin{X: 3, Y: 4}, st.Origin)
}

func TestController_TransitionBound(t *testing.T) {
	t.Parallel()
	c, clock := newController(t, nil, nil)

	c.SetModeAt(mode.Dark, mode.Origin{X: 1, Y: 1})
	clock.Advance(mode.DefaultDuration - time.Millisecond)
	assert.True(t, c.IsTransitioning())

	clock.Advance(time.Millisecond)
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, mode.Dark, c.Mode())
	assert.Zero(t, clock.Pending())
}

func TestController_OriginFixedForTransition(t *testing.T) {
	t.Parallel()
	c, clock := newController(t, nil, nil)

	c.SetModeAt(mode.Dark, mode.Origin{X: 9, Y: 2})
	for i := 0; i < 7; i++ {
		clock.Advance(100 * time.Millisecond)
		origin, ok := c.TransitionOrigin()
		require.True(t, ok)
		assert.Equal(t, mode.Origin{X: 9, Y: 2}, origin)
	}
}

func TestController_Idempotent(t *testing.T) {
	t.Parallel()
	store := prefs.NewMemoryStore()
	c, clock := newController(t, store, modetest.NewPreference(true))
	before := c.State()

	c.SetMode(mode.Dark)
	c.SetModeAt(mode.Dark, mode.Origin{X: 5, Y: 5})

	assert.Equal(t, before, c.State())
	assert.False(t, c.IsTransitioning())
	assert.Zero(t, clock.Pending())
	_, ok, _ := store.Get(mode.StorageKey)
	assert.False(t, ok, "no-op must not persist")
	assert.False(t, c.Explicit())
}

func TestController_InvalidModeIgnored(t *testing.T) {
	t.Parallel()
	c, _ := newController(t, nil, nil)
	before := c.State()
	c.SetMode(mode.Mode("sepia"))
	c.SetModeAt(mode.Mode(""), mode.Origin{})
	assert.Equal(t, before, c.State())
}

func TestController_SetModeImmediate(t *testing.T) {
	t.Parallel()
	store := prefs.NewMemoryStore()
	c, clock := newController(t, store, nil)

	c.SetMode(mode.Dark)
	assert.Equal(t, mode.Dark, c.Mode())
	assert.False(t, c.IsTransitioning())
	assert.Zero(t, clock.Pending())
	assert.Equal(t, "dark", stored(t, store))

	c.Toggle()
	assert.Equal(t, mode.Light, c.Mode())
	assert.Equal(t, "light", stored(t, store))
}

func TestController_PreemptCancelsSupersededTimers(t *testing.T) {
	t.Parallel()
	c, clock := newController(t, nil, nil)

	c.SetModeAt(mode.Dark, mode.Origin{X: 1, Y: 1})
	clock.Advance(500 * time.Millisecond)
	c.SetModeAt(mode.Light, mode.Origin{X: 7, Y: 8})

	assert.Equal(t, 2, clock.Pending(), "only the new flip and idle timers remain")

	// The superseded transition would have ended here.
	clock.Advance(300 * time.Millisecond)
	assert.True(t, c.IsTransitioning())
	origin, _ := c.TransitionOrigin()
	assert.Equal(t, mode.Origin{X: 7, Y: 8}, origin)

	clock.Advance(500 * time.Millisecond)
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, mode.Light, c.Mode())
}

func TestController_StaleCallbackIsNoOp(t *testing.T) {
	t.Parallel()
	clock := modetest.NewClock()
	clock.LeakyStop = true
	c := mode.NewController(mode.Options{Clock: clock})
	t.Cleanup(c.Close)

	c.SetModeAt(mode.Dark, mode.Origin{X: 1, Y: 1})
	clock.Advance(400 * time.Millisecond)
	c.SetModeAt(mode.Light, mode.Origin{X: 2, Y: 2})

	// The first transition's idle callback still runs at 800ms.
	clock.Advance(400 * time.Millisecond)
	assert.True(t, c.IsTransitioning())
	assert.Equal(t, mode.Light, c.Mode())

	clock.Advance(400 * time.Millisecond)
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, mode.Light, c.Mode())
}

func TestController_ImmediateChangeEndsTransition(t *testing.T) {
	t.Parallel()
	c, clock := newController(t, nil, nil)

	c.SetModeAt(mode.Dark, mode.Origin{X: 1, Y: 1})
	c.SetMode(mode.Light)

	assert.False(t, c.IsTransitioning())
	assert.Equal(t, mode.Light, c.Mode())
	assert.Zero(t, clock.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, mode.Light, c.Mode())
}

func TestController_RevertBeforeFlip(t *testing.T) {
	t.Parallel()
	c, clock := newController(t, nil, nil)

	c.SetModeAt(mode.Dark, mode.Origin{X: 1, Y: 1})
	c.SetModeAt(mode.Light, mode.Origin{X: 2, Y: 2})

	clock.Advance(mode.DefaultDuration)
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, mode.Light, c.Mode())
}

func TestController_PreferenceFollowedUntilExplicit(t *testing.T) {
	t.Parallel()
	pref := modetest.NewPreference(false)
	store := prefs.NewMemoryStore()
	c, _ := newController(t, store, pref)

	pref.Emit(true)
	assert.Equal(t, mode.Dark, c.Mode())
	assert.False(t, c.IsTransitioning(), "preference changes do not animate")
	_, ok, _ := store.Get(mode.StorageKey)
	assert.False(t, ok, "preference changes are not persisted")

	c.SetMode(mode.Light)
	pref.Emit(true)
	pref.Emit(false)
	pref.Emit(true)
	assert.Equal(t, mode.Light, c.Mode())
}

func TestController_PreferenceIgnoredWithStoredChoice(t *testing.T) {
	t.Parallel()
	pref := modetest.NewPreference(true)
	c, _ := newController(t, storeWith(t, "light"), pref)

	pref.Emit(false)
	pref.Emit(true)
	assert.Equal(t, mode.Light, c.Mode())
}

func TestController_PersistenceRoundTrip(t *testing.T) {
	t.Parallel()
	store := prefs.NewMemoryStore()
	c, _ := newController(t, store, modetest.NewPreference(false))
	c.SetMode(mode.Dark)
	c.Close()

	pref := modetest.NewPreference(false)
	reloaded, _ := newController(t, store, pref)
	assert.Equal(t, mode.Dark, reloaded.Mode())
}

type flakyStore struct {
	mu   sync.Mutex
	sets int
}

func (s *flakyStore) Get(string) (string, bool, error) { return "", false, nil }

func (s *flakyStore) Set(string, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	return errors.New("disk full")
}

func TestController_WriteFailureDegrades(t *testing.T) {
	t.Parallel()
	store := &flakyStore{}
	c, clock := newController(t, store, modetest.NewPreference(false))

	c.ToggleAt(mode.Origin{X: 1, Y: 1})
	clock.Advance(mode.DefaultDuration)
	assert.Equal(t, mode.Dark, c.Mode())

	c.Toggle()
	assert.Equal(t, mode.Light, c.Mode())
	assert.Equal(t, 1, store.sets, "store is dropped after the first failure")
	assert.True(t, c.Explicit())
}

func TestController_ReadFailureDegrades(t *testing.T) {
	t.Parallel()
	store := &modetest.FailingStore{}
	c, _ := newController(t, store, nil)

	c.SetMode(mode.Dark)
	assert.Equal(t, mode.Dark, c.Mode())
	assert.Equal(t, 1, store.Gets)
	assert.Zero(t, store.Sets)
}

func TestController_CorruptFileIsRepaired(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c, _ := newController(t, prefs.NewFileStore(path), modetest.NewPreference(false))
	assert.Equal(t, mode.Light, c.Mode())
	assert.False(t, c.Explicit(), "a corrupt file holds no choice")

	c.SetMode(mode.Dark)
	c.Close()

	next, _ := newController(t, prefs.NewFileStore(path), modetest.NewPreference(false))
	assert.Equal(t, mode.Dark, next.Mode())
	assert.True(t, next.Explicit())
}

func TestController_Subscribe(t *testing.T) {
	t.Parallel()
	c, clock := newController(t, nil, nil)

	var mu sync.Mutex
	var got []mode.State
	unsubscribe := c.Subscribe(func(st mode.State) {
		mu.Lock()
		got = append(got, st)
		mu.Unlock()
	})

	c.SetModeAt(mode.Dark, mode.Origin{X: 1, Y: 1})
	clock.Advance(mode.DefaultDuration)

	mu.Lock()
	require.Len(t, got, 3, "start, flip, idle")
	assert.True(t, got[0].Transitioning)
	assert.Equal(t, mode.Light, got[0].Mode)
	assert.Equal(t, mode.Dark, got[1].Mode)
	assert.False(t, got[2].Transitioning)
	assert.Less(t, got[0].Version, got[1].Version)
	assert.Less(t, got[1].Version, got[2].Version)
	mu.Unlock()

	unsubscribe()
	unsubscribe()
	c.SetMode(mode.Light)
	mu.Lock()
	assert.Len(t, got, 3)
	mu.Unlock()
}

func TestController_Reset(t *testing.T) {
	t.Parallel()
	pref := modetest.NewPreference(true)
	store := storeWith(t, "light")
	c, _ := newController(t, store, pref)
	require.Equal(t, mode.Light, c.Mode())

	c.Reset()
	assert.Equal(t, mode.Dark, c.Mode())
	assert.False(t, c.Explicit())
	_, ok, _ := store.Get(mode.StorageKey)
	assert.False(t, ok)

	pref.Emit(false)
	assert.Equal(t, mode.Light, c.Mode())
}

func TestController_Close(t *testing.T) {
	t.Parallel()
	pref := modetest.NewPreference(false)
	c, clock := newController(t, nil, pref)
	require.Equal(t, 1, pref.Listeners())

	c.SetModeAt(mode.Dark, mode.Origin{X: 1, Y: 1})
	c.Close()

	assert.Zero(t, pref.Listeners())
	assert.Zero(t, clock.Pending())
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, mode.Dark, c.Mode())

	c.SetMode(mode.Light)
	assert.Equal(t, mode.Dark, c.Mode())
	c.Close()
}

func TestController_ConcurrentRequests(t *testing.T) {
	t.Parallel()
	c := mode.NewController(mode.Options{
		Duration:   20 * time.Millisecond,
		FrameDelay: time.Millisecond,
	})
	t.Cleanup(c.Close)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if (i+j)%2 == 0 {
					c.ToggleAt(mode.Origin{X: i, Y: j})
				} else {
					c.Toggle()
				}
				_ = c.State()
			}
		}(i)
	}
	wg.Wait()

	require.Eventually(t, func() bool { return !c.IsTransitioning() }, time.Second, 5*time.Millisecond)
	st := c.State()
	assert.True(t, st.Mode.Valid())
}

func TestResolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		store      mode.Store
		pref       mode.Preference
		want       mode.Mode
		wantSource mode.Source
	}{
		{"stored", storeWith(t, "dark"), modetest.NewPreference(false), mode.Dark, mode.SourceStored},
		{"system", prefs.NewMemoryStore(), modetest.NewPreference(true), mode.Dark, mode.SourceSystem},
		{"malformed", storeWith(t, "x"), modetest.NewPreference(false), mode.Light, mode.SourceSystem},
		{"failing store", &modetest.FailingStore{}, modetest.UnknownPreference(), mode.Light, mode.SourceDefault},
		{"nothing", nil, nil, mode.Light, mode.SourceDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, source := mode.Resolve(tt.store, tt.pref)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}
