package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/kaleido/internal/repl"
)

func newREPLCmd(opts *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive parse loop",
		Long: `Read top-level constructs one line at a time and report what was
parsed. A construct may span several lines; the continuation prompt is
shown until it is complete.

Keys (interactive mode):
  Enter     - submit the line
  Esc       - discard an unfinished construct
  Up/Down   - input history
  Ctrl+D    - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "line-oriented mode without the terminal UI")
	return cmd
}

func runREPL(cmd *cobra.Command, opts *rootOptions, plain bool) error {
	session := repl.NewSession(opts.cfg.DepthLimit())
	prompts := repl.Prompts{
		Primary:      opts.cfg.REPL.Prompt,
		Continuation: opts.cfg.REPL.ContinuationPrompt,
	}

	if plain || !isTerminal(cmd) {
		opts.logger.Debug("repl", "mode", "plain")
		if err := repl.RunPlain(cmd.InOrStdin(), cmd.OutOrStdout(), session, prompts); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	} else {
		opts.logger.Debug("repl", "mode", "interactive")
		p := tea.NewProgram(
			repl.NewModel(session, prompts),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("terminal UI: %w", err)
		}
	}

	opts.logger.Debug("repl finished",
		"definitions", len(session.Definitions()),
		"externs", len(session.Externs()),
		"expressions", session.Expressions())
	return nil
}

// isTerminal reports whether the command reads from and writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isatty.IsTerminal(in.Fd()) {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	return ok && isatty.IsTerminal(out.Fd())
}
