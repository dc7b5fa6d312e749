package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const stdinName = "<stdin>"

// readStdin читает документ, когда вместо пути передан "-".
func readStdin(cmd *cobra.Command) ([]byte, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
