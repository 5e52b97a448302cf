package mode

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{"DARK", "", false},
		{" dark", "", false},
		{"", "", false},
		{"system", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Parse(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	t.Parallel()
	if Light.Opposite() != Dark || Dark.Opposite() != Light {
		t.Fatal("Opposite must swap light and dark")
	}
	if !Dark.IsDark() || Light.IsDark() {
		t.Fatal("IsDark mismatch")
	}
	if FromDark(true) != Dark || FromDark(false) != Light {
		t.Fatal("FromDark mismatch")
	}
}

func TestStateProgress(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := State{Transitioning: true, StartedAt: start}

	tests := []struct {
		name string
		at   time.Duration
		want float64
	}{
		{"start", 0, 0},
		{"half", 400 * time.Millisecond, 0.5},
		{"end", 800 * time.Millisecond, 1},
		{"overrun", 2 * time.Second, 1},
		{"clock skew", -time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := st.Progress(start.Add(tt.at), 800*time.Millisecond); got != tt.want {
				t.Fatalf("Progress = %v, want %v", got, tt.want)
			}
		})
	}

	if got := (State{}).Progress(start, time.Second); got != 1 {
		t.Fatalf("idle progress = %v, want 1", got)
	}
}
