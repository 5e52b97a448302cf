package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jansmrcka/vitrine/internal/mode"
)

// frameInterval paces redraws while a transition is in flight.
const frameInterval = time.Second / 30

// sgrReset ends any style left open by a cut segment.
const sgrReset = "\x1b[m"

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// easeInOutCubic maps linear progress onto a smooth start and finish.
func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	f := -2*p + 2
	return 1 - f*f*f/2
}

// revealRadius returns the circle radius, in rows, at linear progress p.
// At p=1 the circle covers the farthest corner of a w×h screen.
func revealRadius(p float64, o mode.Origin, w, h int) float64 {
	dx := math.Max(float64(o.X), float64(w-1-o.X)) / cellAspect
	dy := math.Max(float64(o.Y), float64(h-1-o.Y))
	full := math.Hypot(dx, dy) + 1
	return easeInOutCubic(p) * full
}

// revealSpan returns the half-open cell interval of row y inside the circle.
// ok is false when the row misses the circle.
func revealSpan(o mode.Origin, r float64, y int) (x0, x1 int, ok bool) {
	dy := float64(y - o.Y)
	if r <= 0 || math.Abs(dy) > r {
		return 0, 0, false
	}
	half := math.Sqrt(r*r-dy*dy) * cellAspect
	x0 = int(math.Ceil(float64(o.X) - half))
	x1 = int(math.Floor(float64(o.X)+half)) + 1
	if x1 <= x0 {
		return 0, 0, false
	}
	return x0, x1, true
}

// composite draws newFrame inside the circle of radius r around o and
// oldFrame outside it. Both frames must share dimensions.
func composite(oldFrame, newFrame string, o mode.Origin, r float64) string {
	oldLines := strings.Split(oldFrame, "\n")
	newLines := strings.Split(newFrame, "\n")
	out := make([]string, len(oldLines))
	for y, line := range oldLines {
		if y >= len(newLines) {
			out[y] = line
			continue
		}
		x0, x1, ok := revealSpan(o, r, y)
		if !ok {
			out[y] = line
			continue
		}
		w := max(ansi.StringWidth(line), ansi.StringWidth(newLines[y]))
		x0, x1 = max(x0, 0), min(x1, w)
		if x0 == 0 && x1 >= w {
			out[y] = newLines[y]
			continue
		}
		if x0 >= x1 {
			out[y] = line
			continue
		}
		out[y] = ansi.Cut(line, 0, x0) + sgrReset + ansi.Cut(newLines[y], x0, x1) + sgrReset + ansi.Cut(line, x1, w)
	}
	return strings.Join(out, "\n")
}
