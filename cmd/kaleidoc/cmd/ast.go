package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/kaleido/internal/config"
	"github.com/you-not-fish/kaleido/internal/syntax"
)

type astOptions struct {
	format   string
	maxDepth int
}

func newASTCmd(opts *rootOptions) *cobra.Command {
	astOpts := &astOptions{}

	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Parse a source file and print its syntax tree",
		Long: `Parse FILE and print the resulting syntax tree. Use - to read from
standard input.

Formats:
  text   - indented tree with positions
  sexpr  - one s-expression per top-level construct
  json   - JSON object tree
  yaml   - YAML document with the same shape as json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, opts, astOpts, args[0])
		},
	}

	cmd.Flags().StringVarP(&astOpts.format, "format", "f", "", "output format: text, sexpr, json or yaml (default from config)")
	cmd.Flags().IntVar(&astOpts.maxDepth, "max-depth", 0, "expression nesting limit, negative for none (default from config)")
	return cmd
}

func runAST(cmd *cobra.Command, opts *rootOptions, astOpts *astOptions, path string) error {
	cfg := *opts.cfg
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = astOpts.format
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.Parser.MaxDepth = astOpts.maxDepth
	}
	if !config.IsFormat(cfg.Output.Format) {
		return fmt.Errorf("unknown format %q (want text, sexpr, json or yaml)", cfg.Output.Format)
	}

	name, src, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer src.Close()

	start := time.Now()
	f, err := syntax.ParseFile(name, src, syntax.MaxDepth(cfg.DepthLimit()))
	if err != nil {
		return err
	}
	opts.logger.Debug("parse", "file", name, "decls", len(f.Decls), "elapsed", time.Since(start))

	start = time.Now()
	w := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case config.FormatSexpr:
		for _, d := range f.Decls {
			fmt.Fprintln(w, d)
		}
	case config.FormatJSON:
		err = syntax.FprintJSON(w, f)
	case config.FormatYAML:
		err = syntax.FprintYAML(w, f)
	default:
		syntax.Fprint(w, f)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.Format, err)
	}
	opts.logger.Debug("print", "format", cfg.Output.Format, "elapsed", time.Since(start))
	return nil
}
