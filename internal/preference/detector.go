// Package preference reports the host environment's preferred color scheme.
//
// Several detectors are consulted in order and the first one with an answer
// wins. A Watcher polls the chain and notifies listeners when the answer
// changes, which is what the display-mode controller subscribes to.
package preference

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// EnvVar overrides every other detector when set to "light" or "dark".
const EnvVar = "VITRINE_COLOR_SCHEME"

// Detector answers whether the environment prefers a dark color scheme.
type Detector interface {
	Name() string
	// Detect returns ok=false when this source has no opinion.
	Detect() (dark bool, ok bool)
}

// Env reads an explicit light/dark value from an environment variable.
type Env struct {
	Var    string
	Getenv func(string) string
}

func (Env) Name() string { return "env" }

func (d Env) Detect() (bool, bool) {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	name := d.Var
	if name == "" {
		name = EnvVar
	}
	switch strings.ToLower(strings.TrimSpace(getenv(name))) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// ColorFGBG interprets the COLORFGBG variable set by rxvt, Konsole and
// friends, formatted "fg;bg" or "fg;default;bg".
type ColorFGBG struct {
	Getenv func(string) string
}

func (ColorFGBG) Name() string { return "colorfgbg" }

func (d ColorFGBG) Detect() (bool, bool) {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	raw := getenv("COLORFGBG")
	if raw == "" {
		return false, false
	}
	parts := strings.Split(raw, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}
	// ANSI 0-6 and 8 are dark backgrounds; 7 and 9-15 are light.
	return bg < 7 || bg == 8, true
}

// Desktop asks the desktop environment: GNOME's color-scheme setting on
// Linux and AppleInterfaceStyle on macOS.
type Desktop struct {
	GOOS string
	Run  func(name string, args ...string) ([]byte, error)
}

func (Desktop) Name() string { return "desktop" }

func (d Desktop) Detect() (bool, bool) {
	run := d.Run
	if run == nil {
		run = func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		}
	}
	goos := d.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "linux", "freebsd", "openbsd":
		out, err := run("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return false, false
		}
		return parseGnomeColorScheme(string(out))
	case "darwin":
		// The key only exists while dark mode is on; a failed read means light.
		out, err := run("defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			return false, true
		}
		return strings.EqualFold(strings.TrimSpace(string(out)), "dark"), true
	}
	return false, false
}

func parseGnomeColorScheme(out string) (bool, bool) {
	v := strings.Trim(strings.TrimSpace(out), "'\"")
	switch v {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	}
	// "default" leaves the decision to the application.
	return false, false
}

// Terminal asks the terminal for its background color. The query writes
// to the terminal, so it runs once and the answer is cached; it must happen
// before a full-screen program takes over the terminal.
type Terminal struct {
	once sync.Once
	dark bool
	ok   bool

	// Probe defaults to lipgloss.HasDarkBackground when stdout is a TTY.
	Probe func() (dark bool, ok bool)
}

func (*Terminal) Name() string { return "terminal" }

func (d *Terminal) Detect() (bool, bool) {
	d.once.Do(func() {
		probe := d.Probe
		if probe == nil {
			probe = probeTerminal
		}
		d.dark, d.ok = probe()
	})
	return d.dark, d.ok
}

func probeTerminal() (bool, bool) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return false, false
	}
	return lipgloss.HasDarkBackground(), true
}

// Chain consults detectors in order.
type Chain []Detector

// Detect returns the first answer and the name of the detector that gave it.
func (c Chain) Detect() (dark bool, source string, ok bool) {
	for _, d := range c {
		if dark, ok := d.Detect(); ok {
			return dark, d.Name(), true
		}
	}
	return false, "", false
}

// DefaultChain is env override, desktop setting, COLORFGBG, then the
// terminal background.
func DefaultChain() Chain {
	return Chain{Env{}, Desktop{}, ColorFGBG{}, &Terminal{}}
}
