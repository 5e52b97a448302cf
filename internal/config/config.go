package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VITRINE_LOG_FILE.
const EnvPrefix = "VITRINE"

// ErrInvalid marks a configuration value that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds user preferences.
type Config struct {
	Template string `mapstructure:"template"`
	Scheme   string `mapstructure:"scheme"`

	TransitionDuration time.Duration `mapstructure:"transition_duration"`
	FrameDelay         time.Duration `mapstructure:"frame_delay"`
	PreferencePoll     time.Duration `mapstructure:"preference_poll"`

	// Persist stores explicit display-mode choices in PrefsPath.
	Persist   bool   `mapstructure:"persist"`
	PrefsPath string `mapstructure:"prefs_path"`

	CatalogDir string `mapstructure:"catalog_dir"`

	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	dir := Dir()
	return Config{
		TransitionDuration: 800 * time.Millisecond,
		FrameDelay:         16 * time.Millisecond,
		PreferencePoll:     2 * time.Second,
		Persist:            true,
		PrefsPath:          filepath.Join(dir, "prefs.json"),
		CatalogDir:         filepath.Join(dir, "templates"),
		LogLevel:           "info",
	}
}

// Dir returns ~/.config/vitrine, or a relative fallback when there is no
// home directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vitrine"
	}
	return filepath.Join(home, ".config", "vitrine")
}

// DefaultPath is the config file read when none is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads defaults, then the config file at path (DefaultPath when
// empty), then VITRINE_* environment variables. A missing default file is
// not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := newViper()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	durations := []struct {
		key string
		d   time.Duration
	}{
		{"transition_duration", c.TransitionDuration},
		{"frame_delay", c.FrameDelay},
		{"preference_poll", c.PreferencePoll},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, d.key, d.d)
		}
	}
	if c.FrameDelay >= c.TransitionDuration {
		return fmt.Errorf("%w: frame_delay %s must be shorter than transition_duration %s",
			ErrInvalid, c.FrameDelay, c.TransitionDuration)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Save writes cfg to path, creating parent directories. The format follows
// the file extension.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	v := viper.New()
	for key, value := range cfg.values() {
		v.Set(key, value)
	}
	return v.WriteConfigAs(path)
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range Default().values() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func (c Config) values() map[string]any {
	return map[string]any{
		"template":            c.Template,
		"scheme":              c.Scheme,
		"transition_duration": c.TransitionDuration.String(),
		"frame_delay":         c.FrameDelay.String(),
		"preference_poll":     c.PreferencePoll.String(),
		"persist":             c.Persist,
		"prefs_path":          c.PrefsPath,
		"catalog_dir":         c.CatalogDir,
		"log_file":            c.LogFile,
		"log_level":           c.LogLevel,
	}
}
