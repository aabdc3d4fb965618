package main

import (
	"fmt"

	"github.com/dhamidi/byteparse/grammar/number"
	"github.com/spf13/cobra"
)

func newNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "number <literal>...",
		Short: "Classify decimal literals as uint, integer or float",
		Args:  cobra.MinimumNArgs(1),
		// negative literals such as -42 would otherwise be read as flags
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if arg == "-h" || arg == "--help" {
					return cmd.Help()
				}
				n, err := number.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}
				switch v := n.(type) {
				case number.Uint:
					fmt.Fprintf(out, "uint %d\n", uint64(v))
				case number.Integer:
					fmt.Fprintf(out, "integer %d\n", int64(v))
				case number.Float:
					fmt.Fprintf(out, "float %g\n", float64(v))
				}
			}
			return nil
		},
	}
}
