package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chriserin/gherkin2md/internal/config"
	"github.com/chriserin/gherkin2md/internal/parser"
	"github.com/chriserin/gherkin2md/internal/render"
	"github.com/chriserin/gherkin2md/internal/ui"
	"github.com/spf13/cobra"
)

var (
	formatFlag  string
	configFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "gherkin2md [file]",
	Short: "gherkin2md — convert Gherkin features to Markdown or YouTrack markup",
	Long: `Reads a Gherkin feature file (or stdin when no file is given) and writes
its scenarios as a checklist in the selected format.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(cmd.ErrOrStderr(), verboseFlag))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := ConvertOptions{ConfigPath: configFlag}
		if cmd.Flags().Changed("format") {
			opts.Format = formatFlag
		}
		if len(args) == 1 {
			opts.Target = args[0]
		}
		return RunConvert(cmd.OutOrStdout(), cmd.InOrStdin(), opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", render.FormatMarkdown,
		"Output format ("+strings.Join(render.Formats, ", ")+")")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging on stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// report prints err and returns the process exit code for it.
func report(w io.Writer, err error) int {
	ui.ErrorLine(w, err)
	return ExitCode(err)
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, render.ErrUnknownFormat):
		return 2
	default:
		return 1
	}
}

// ConvertOptions selects what RunConvert reads and how it renders.
// An empty Format falls back to the config file, then to markdown; an
// empty Target reads stdin.
type ConvertOptions struct {
	Format     string
	Target     string
	ConfigPath string
}

func RunConvert(w io.Writer, stdin io.Reader, opts ConvertOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	format := cfg.Format
	if opts.Format != "" {
		format = opts.Format
	}
	renderer, err := render.New(format, cfg.RenderOptions())
	if err != nil {
		return err
	}

	content, source, err := readInput(stdin, opts.Target)
	if err != nil {
		return err
	}

	features := parser.Parse(content)
	slog.Debug("parsed input", "source", source, "features", len(features), "format", format)

	if _, err := io.WriteString(w, renderer.Render(features)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	slog.Debug("loaded config", "path", path, "format", cfg.Format)
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
