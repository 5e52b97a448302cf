package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jansmrcka/vitrine/internal/config"
	"github.com/jansmrcka/vitrine/internal/logging"
	"github.com/jansmrcka/vitrine/internal/mode"
	"github.com/jansmrcka/vitrine/internal/preference"
	"github.com/jansmrcka/vitrine/internal/prefs"
	"github.com/jansmrcka/vitrine/internal/scheme"
	"github.com/jansmrcka/vitrine/internal/stylevar"
	"github.com/jansmrcka/vitrine/internal/theme"
	"github.com/jansmrcka/vitrine/internal/ui"
)

var version = "dev"

var (
	flagConfig   string
	flagCatalog  string
	flagTemplate string
	flagScheme   string
)

var rootCmd = &cobra.Command{
	Use:     "vitrine",
	Short:   "Browse page templates and their color schemes in light and dark mode",
	Version: version,
	RunE:    runShowcase,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/vitrine/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "directory of YAML template catalogs")
	rootCmd.Flags().StringVarP(&flagTemplate, "template", "t", "", "template to open")
	rootCmd.Flags().StringVarP(&flagScheme, "scheme", "s", "", "initial color scheme")
	rootCmd.AddCommand(listCmd, cssCmd, modeCmd, lintCmd, configCmd)
}

// Execute runs the root CLI command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the engine every command shares.
type app struct {
	cfg     config.Config
	catalog scheme.Catalog
	store   mode.Store
	pref    *preference.Watcher
}

func setup() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		_ = logging.Close()
		return nil, err
	}
	return &app{
		cfg:     cfg,
		catalog: catalog,
		store:   newStore(cfg),
		pref:    preference.NewWatcher(preference.DefaultChain(), cfg.PreferencePoll, logging.Component("preference")),
	}, nil
}

func (a *app) close() {
	_ = logging.Close()
}

// controller builds the display-mode controller from the loaded config.
func (a *app) controller() *mode.Controller {
	log := logging.Component("mode")
	return mode.NewController(mode.Options{
		Store:      a.store,
		Preference: a.pref,
		Duration:   a.cfg.TransitionDuration,
		FrameDelay: a.cfg.FrameDelay,
		Logger:     &log,
	})
}

func loadCatalog(cfg config.Config) (scheme.Catalog, error) {
	dir := cfg.CatalogDir
	if flagCatalog != "" {
		dir = flagCatalog
	}
	extra, err := scheme.LoadDir(dir)
	if err != nil {
		return scheme.Catalog{}, fmt.Errorf("loading catalog %s: %w", dir, err)
	}
	return scheme.Builtin().Merge(extra), nil
}

func newStore(cfg config.Config) mode.Store {
	if !cfg.Persist {
		return prefs.NewMemoryStore()
	}
	return prefs.NewFileStore(cfg.PrefsPath, prefs.WithLogger(logging.Component("prefs")))
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func runShowcase(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	a.pref.Start()
	defer a.pref.Stop()
	modes := a.controller()
	defer modes.Close()

	sheet := stylevar.NewSheet(theme.ForMode(modes.Mode()).BaseVars())
	model, err := ui.NewModel(ui.Options{
		Catalog:  a.catalog,
		Template: pick(flagTemplate, a.cfg.Template),
		Scheme:   pick(flagScheme, a.cfg.Scheme),
		Sheet:    sheet,
		Modes:    modes,
		Logger:   logging.Component("ui"),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if m, ok := finalModel.(ui.Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	return err
}
