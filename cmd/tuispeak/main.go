// Package main provides the CLI entrypoint for tuispeak.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuispeak/internal/config"
	"github.com/verte-zerg/tuispeak/internal/model"
	"github.com/verte-zerg/tuispeak/internal/preview"
	"github.com/verte-zerg/tuispeak/internal/speech"
	"github.com/verte-zerg/tuispeak/internal/stats"
	"github.com/verte-zerg/tuispeak/internal/textsource"
	"github.com/verte-zerg/tuispeak/internal/tui"
)

const (
	defaultProfile = "normal"
	defaultPauses  = true
)

// estimateFlags holds the rate and pause flags shared by several commands.
type estimateFlags struct {
	profile       string
	wpm           int
	pauses        bool
	sentencePause int64
	clausePause   int64
}

var (
	rootFlags     estimateFlags
	estimateOpts  estimateFlags
	reportOpts    estimateFlags
	previewOpts   estimateFlags
	estimateText  string
	estimateMs    bool
	reportText    string
	previewStyle  string
	previewWidth  int
	errNoInputArg = errors.New("no input: pass a file, - for stdin, or --text")
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuispeak [file]",
		Short:         "Estimate how long text takes to read aloud",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runEditorCmd,
	}
	addEstimateFlags(rootCmd, &rootFlags)

	rootCmd.AddCommand(newEstimateCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addEstimateFlags(cmd *cobra.Command, flags *estimateFlags) {
	cmd.Flags().StringVar(&flags.profile, "profile", defaultProfile, "speaking rate profile (slow, normal, fast, custom)")
	cmd.Flags().IntVar(&flags.wpm, "wpm", 0, "custom words per minute (selects the custom profile)")
	cmd.Flags().BoolVar(&flags.pauses, "pauses", defaultPauses, "add pauses for punctuation")
	cmd.Flags().Int64Var(&flags.sentencePause, "sentence-pause", speech.DefaultSentencePauseMs, "pause after . ! ? in ms")
	cmd.Flags().Int64Var(&flags.clausePause, "clause-pause", speech.DefaultClausePauseMs, "pause after , ; : in ms")
}

func runEditorCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, &rootFlags)
	if err != nil {
		return err
	}
	text := ""
	if len(args) == 1 {
		text, err = textsource.Load(args[0], cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to load text: %w", err)
		}
	}
	editor := tui.NewModel(cfg, text)
	program := tea.NewProgram(editor, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if summary := editor.Summary(); summary != "" {
		logErrln(summary)
	}
	return nil
}

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [file|-]",
		Short: "Print the estimated speaking time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEstimateCmd,
	}
	addEstimateFlags(cmd, &estimateOpts)
	cmd.Flags().StringVar(&estimateText, "text", "", "text to estimate instead of a file")
	cmd.Flags().BoolVar(&estimateMs, "ms", false, "print milliseconds instead of M:SS")
	return cmd
}

func runEstimateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, &estimateOpts)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args, estimateText)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	ms, err := speech.Estimate(text, opts)
	if err != nil {
		return err
	}
	out := fmt.Sprintf("%d", ms)
	if !estimateMs {
		out, err = speech.FormatDuration(float64(ms))
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file|-]",
		Short: "Show a per-sentence speaking time report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReportCmd,
	}
	addEstimateFlags(cmd, &reportOpts)
	cmd.Flags().StringVar(&reportText, "text", "", "text to report on instead of a file")
	return cmd
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, &reportOpts)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args, reportText)
	if err != nil {
		return err
	}
	report, err := stats.BuildReport(text, cfg)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if err := stats.RenderSummary(w, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if report.Breakdown.Words == 0 {
		return nil
	}
	if err := stats.RenderProfiles(w, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderBreakdown(w, report, stats.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file.md|->",
		Short: "Render a Markdown file with its speaking time",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreviewCmd,
	}
	addEstimateFlags(cmd, &previewOpts)
	cmd.Flags().StringVar(&previewStyle, "style", "auto", "render style (auto, dark, light, notty)")
	cmd.Flags().IntVar(&previewWidth, "width", 0, "wrap width (default: terminal width)")
	return cmd
}

func runPreviewCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, &previewOpts)
	if err != nil {
		return err
	}
	text, err := textsource.Load(args[0], cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to load markdown: %w", err)
	}
	width := previewWidth
	if width <= 0 {
		width = stats.TerminalWidth()
	}
	rendered, err := preview.Render(text, previewStyle, width)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	ms, err := speech.Estimate(text, opts)
	if err != nil {
		return err
	}
	formatted, err := speech.FormatDuration(float64(ms))
	if err != nil {
		return err
	}
	pauses := "pauses off"
	if opts.IncludePauses {
		pauses = "pauses on"
	}
	w := cmd.OutOrStdout()
	if _, err := fmt.Fprint(w, rendered); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Speaking time: %s (%s, %.0f WPM, %s)\n", formatted, cfg.Profile, opts.WPM, pauses); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List speaking rate profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfilesCmd,
	}
}

func runProfilesCmd(cmd *cobra.Command, _ []string) error {
	for _, p := range speech.Profiles() {
		line := fmt.Sprintf("%-7s set with --wpm", p)
		if wpm, ok := p.PresetWPM(); ok {
			line = fmt.Sprintf("%-7s %d WPM", p, wpm)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig merges the config file into flags the user did not set.
func resolveConfig(cmd *cobra.Command, flags *estimateFlags) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	est := fileCfg.Estimate
	applyStringConfig(cmd, "profile", &flags.profile, est.Profile)
	applyIntConfig(cmd, "wpm", &flags.wpm, est.WPM)
	applyBoolConfig(cmd, "pauses", &flags.pauses, est.Pauses)
	applyInt64Config(cmd, "sentence-pause", &flags.sentencePause, est.SentencePauseMs)
	applyInt64Config(cmd, "clause-pause", &flags.clausePause, est.ClausePauseMs)

	profile, err := speech.ParseProfile(flags.profile)
	if err != nil {
		return model.Config{}, fmt.Errorf("--profile: %w", err)
	}
	profileFlag := cmd.Flags().Changed("profile")
	switch {
	case cmd.Flags().Changed("wpm"):
		// --wpm only applies to the custom profile.
		if profileFlag && profile != speech.ProfileCustom {
			return model.Config{}, fmt.Errorf("--wpm cannot be combined with --profile %s (use --profile custom)", profile)
		}
		profile = speech.ProfileCustom
	case flags.wpm != 0 && !profileFlag && est.Profile == nil:
		profile = speech.ProfileCustom
	}

	cfg := model.Config{
		Profile:         profile,
		CustomWPM:       flags.wpm,
		IncludePauses:   flags.pauses,
		SentencePauseMs: flags.sentencePause,
		ClausePauseMs:   flags.clausePause,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func readInput(cmd *cobra.Command, args []string, inline string) (string, error) {
	if inline != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("--text cannot be combined with a file argument")
		}
		return inline, nil
	}
	if len(args) == 1 {
		text, err := textsource.Load(args[0], cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to load text: %w", err)
		}
		return text, nil
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoInputArg
	}
	text, err := textsource.Read(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return text, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuispeak configuration
# Uncomment a value to enable it. CLI flags override config values.

[estimate]
# profile = %q         # slow, normal, fast or custom
# wpm = 145                  # Words per minute for the custom profile
# pauses = %t              # Add pauses for punctuation
# sentence-pause-ms = %d    # Pause after . ! ? in ms
# clause-pause-ms = %d      # Pause after , ; : in ms
`,
		defaultProfile,
		defaultPauses,
		speech.DefaultSentencePauseMs,
		speech.DefaultClausePauseMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.CustomWPM < 0 {
		return fmt.Errorf("--wpm must be > 0")
	}
	if cfg.Profile == speech.ProfileCustom && cfg.CustomWPM == 0 {
		return fmt.Errorf("--wpm is required with --profile custom")
	}
	if cfg.SentencePauseMs < 0 {
		return fmt.Errorf("--sentence-pause must be >= 0")
	}
	if cfg.ClausePauseMs < 0 {
		return fmt.Errorf("--clause-pause must be >= 0")
	}
	return nil
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
