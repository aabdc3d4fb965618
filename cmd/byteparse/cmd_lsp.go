package main

import (
	"github.com/dhamidi/byteparse/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var flags kvFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server reporting key/value problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			log.Info("starting language server")
			return lsp.New(version, opts...).RunStdio()
		},
	}

	flags.register(cmd)

	return cmd
}
