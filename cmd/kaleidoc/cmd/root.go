package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/kaleido/internal/config"
)

// rootOptions holds the persistent flags and the state derived from them.
type rootOptions struct {
	cfgFile string
	verbose bool
	color   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the kaleidoc command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "kaleidoc",
		Short: "Kaleido language front end",
		Long: `kaleidoc scans and parses Kaleido source: a small expression language
with functions, externs, conditionals, loops and local variables.

Commands:
  tokens   - print the token stream of a file
  ast      - parse a file and print its syntax tree
  repl     - read, parse and print interactively`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default: $KALEIDO_CONFIG, ./kaleido.toml, ~/.config/kaleido/config.toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output with phase timings")
	pf.StringVar(&opts.color, "color", "", "color output: auto, always or never")

	rootCmd.AddCommand(
		newTokensCmd(opts),
		newASTCmd(opts),
		newREPLCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree against os.Args and reports any error.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// setup loads configuration, applies flag overrides and creates the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if o.cfgFile != "" {
		path = o.cfgFile
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("color") {
		cfg.Output.Color = o.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	applyColor(cfg.Output.Color)

	if path == "" {
		path = "(defaults)"
	}
	o.logger.Debug("config loaded", "path", path, "format", cfg.Output.Format, "color", cfg.Output.Color)

	o.cfg = cfg
	return nil
}

// applyColor sets the lipgloss color profile for the given mode.
func applyColor(mode string) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("error:"), err)
}
