package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// openInput opens path for reading; "-" means the command's stdin.
// It returns the name to use in positions.
func openInput(cmd *cobra.Command, path string) (string, io.ReadCloser, error) {
	if path == "-" {
		return "<stdin>", io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open input: %w", err)
	}
	return path, f, nil
}
