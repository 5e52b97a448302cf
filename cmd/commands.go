package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jansmrcka/vitrine/internal/config"
	"github.com/jansmrcka/vitrine/internal/lint"
	"github.com/jansmrcka/vitrine/internal/logging"
	"github.com/jansmrcka/vitrine/internal/mode"
	"github.com/jansmrcka/vitrine/internal/registry"
	"github.com/jansmrcka/vitrine/internal/scheme"
	"github.com/jansmrcka/vitrine/internal/stylevar"
	"github.com/jansmrcka/vitrine/internal/theme"
	"github.com/jansmrcka/vitrine/internal/ui"
)

var (
	flagCSSScheme string
	flagPlain     bool
	flagMinRatio  float64
	flagWrite     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and their color schemes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var cssCmd = &cobra.Command{
	Use:   "css [template]",
	Short: "Print the style variables a template publishes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCSS,
}

var modeCmd = &cobra.Command{
	Use:       "mode [light|dark|toggle|reset]",
	Short:     "Show or change the saved display mode",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"light", "dark", "toggle", "reset"},
	RunE:      runMode,
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check text contrast of every color scheme",
	Args:  cobra.NoArgs,
	RunE:  runLint,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	cssCmd.Flags().StringVarP(&flagCSSScheme, "scheme", "s", "", "color scheme (default: the template's default)")
	cssCmd.Flags().BoolVar(&flagPlain, "plain", false, "never highlight output")
	lintCmd.Flags().Float64Var(&flagMinRatio, "min", lint.DefaultMinRatio, "minimum contrast ratio")
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "write the effective configuration to the config file")
}

func swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

var swatchRoles = []scheme.Role{
	scheme.RolePrimary, scheme.RoleSecondary, scheme.RoleAccent,
	scheme.RoleBackground, scheme.RoleForeground, scheme.RoleMuted,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	title := lipgloss.NewStyle().Bold(true)
	for i, def := range a.catalog.Definitions() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s)\n", title.Render(def.Name), def.ID)
		if def.Description != "" {
			fmt.Fprintf(out, "  %s\n", def.Description)
		}
		for _, cs := range def.Schemes {
			var sw strings.Builder
			for _, r := range swatchRoles {
				sw.WriteString(swatch(cs.Value(r)))
			}
			marker := " "
			if cs.ID == def.DefaultSchemeID {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s %-14s %s\n", marker, sw.String(), cs.ID, cs.Name)
		}
	}
	return nil
}

func runCSS(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	id := a.cfg.Template
	if len(args) == 1 {
		id = args[0]
	}
	def, err := lookupTemplate(a.catalog, id)
	if err != nil {
		return err
	}
	schemeID := pick(flagCSSScheme, a.cfg.Scheme)
	if flagCSSScheme != "" {
		if _, ok := def.Scheme(flagCSSScheme); !ok {
			return fmt.Errorf("template %q has no scheme %q", def.ID, flagCSSScheme)
		}
	}

	md, _ := mode.Resolve(a.store, a.pref)
	t := theme.ForMode(md)
	sheet := stylevar.NewSheet(t.BaseVars())
	h, err := registry.Activate(def, sheet,
		registry.WithLogger(logging.Component("registry")),
		registry.WithInitialScheme(schemeID))
	if err != nil {
		return err
	}
	defer h.Teardown()

	css := sheet.CSS(h.Scope(), fmt.Sprintf("[data-template=%q]", def.ID))
	if !flagPlain && isatty.IsTerminal(os.Stdout.Fd()) {
		css = ui.HighlightCSS(css, t.ChromaStyle, "")
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(css, "\n"))
	return nil
}

func lookupTemplate(c scheme.Catalog, id string) (scheme.ThemeDefinition, error) {
	if id == "" {
		defs := c.Definitions()
		if len(defs) == 0 {
			return scheme.ThemeDefinition{}, fmt.Errorf("%w: catalog is empty", ui.ErrUnknownTemplate)
		}
		return defs[0], nil
	}
	def, ok := c.Lookup(id)
	if !ok {
		return scheme.ThemeDefinition{}, fmt.Errorf("%w: %q", ui.ErrUnknownTemplate, id)
	}
	return def, nil
}

func runMode(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		printMode(out, a)
		return nil
	}

	modes := a.controller()
	defer modes.Close()
	switch args[0] {
	case "toggle":
		modes.Toggle()
	case "reset":
		modes.Reset()
	default:
		m, _ := mode.Parse(args[0])
		modes.SetMode(m)
	}
	if !a.cfg.Persist {
		fmt.Fprintln(out, "persistence is disabled; the choice lasts for this run only")
	}
	printMode(out, a)
	return nil
}

func printMode(out io.Writer, a *app) {
	md, source := mode.Resolve(a.store, a.pref)
	line := fmt.Sprintf("%s (%s", md, source)
	if source == mode.SourceSystem {
		line += ": " + a.pref.Source()
	}
	fmt.Fprintln(out, line+")")
}

func runLint(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	report := lint.Catalog(a.catalog, flagMinRatio)
	out := cmd.OutOrStdout()
	for _, f := range report.Failures() {
		fmt.Fprintf(out, "FAIL  %s/%s  %s on %s  %.2f:1\n", f.Template, f.Scheme, f.Pair.Text, f.Pair.Surface, f.Ratio)
	}
	for _, f := range report.Skipped() {
		fmt.Fprintf(out, "SKIP  %s/%s  %s on %s  %v\n", f.Template, f.Scheme, f.Pair.Text, f.Pair.Surface, f.Err)
	}
	fails := len(report.Failures())
	fmt.Fprintf(out, "%d pairs checked, %d below %.1f:1, %d skipped\n",
		len(report.Findings), fails, report.MinRatio, len(report.Skipped()))
	if fails > 0 {
		return errors.New("contrast check failed")
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagWrite {
		path := pick(flagConfig, config.DefaultPath())
		if err := config.Save(cfg, path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(out, "wrote %s\n", path)
		return nil
	}
	fmt.Fprintf(out, "template:            %s\n", cfg.Template)
	fmt.Fprintf(out, "scheme:              %s\n", cfg.Scheme)
	fmt.Fprintf(out, "transition_duration: %s\n", cfg.TransitionDuration)
	fmt.Fprintf(out, "frame_delay:         %s\n", cfg.FrameDelay)
	fmt.Fprintf(out, "preference_poll:     %s\n", cfg.PreferencePoll)
	fmt.Fprintf(out, "persist:             %t\n", cfg.Persist)
	fmt.Fprintf(out, "prefs_path:          %s\n", cfg.PrefsPath)
	fmt.Fprintf(out, "catalog_dir:         %s\n", cfg.CatalogDir)
	fmt.Fprintf(out, "log_file:            %s\n", cfg.LogFile)
	fmt.Fprintf(out, "log_level:           %s\n", cfg.LogLevel)
	return nil
}
