package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/kaleido/internal/syntax"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a source file",
		Long: `Scan FILE and print one token per line with its position, kind and
source text. Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, opts, args[0])
		},
	}
}

// runTokens scans the input file and prints all tokens with positions.
func runTokens(cmd *cobra.Command, opts *rootOptions, path string) error {
	name, src, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer src.Close()

	var errs []string
	errh := func(pos syntax.Pos, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	}

	start := time.Now()
	toks := syntax.Tokenize(syntax.NewScanner(name, src, errh))
	opts.logger.Debug("scan", "file", name, "tokens", len(toks), "elapsed", time.Since(start))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for _, tok := range toks {
		fmt.Fprintf(w, "%-20s %-12s %s\n", tok.Pos, tok.Kind, formatLiteral(tok.Text))
	}

	if len(errs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors:")
		for _, e := range errs {
			fmt.Fprintf(w, "  %s\n", e)
		}
		return fmt.Errorf("%s: %d lexical error(s)", name, len(errs))
	}
	return nil
}

// formatLiteral quotes a token's text for display, escaping control
// characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return `""`
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
