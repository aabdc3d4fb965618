package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput reads the file named by the first argument, or stdin when
// there is none.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	log.Debugf("read %d bytes from %s", len(data), args[0])
	return data, args[0], nil
}

// byteFlag converts a flag value to a single byte. The escapes \t and \n
// are accepted for convenience.
func byteFlag(name, value string) (byte, error) {
	switch value {
	case `\t`:
		return '\t', nil
	case `\n`:
		return '\n', nil
	}
	if len(value) != 1 {
		return 0, fmt.Errorf("--%s must be a single byte, got %q", name, value)
	}
	return value[0], nil
}
