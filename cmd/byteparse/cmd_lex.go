package main

import (
	"fmt"

	"github.com/dhamidi/byteparse/ebnflex"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	var grammarFile string
	var skip []string

	cmd := &cobra.Command{
		Use:   "lex --grammar <file.ebnf> [file]",
		Short: "Tokenize input with an EBNF grammar",
		Long: `Tokenize input with an EBNF grammar.

Productions starting with an upper-case letter are tokens. At each
position the longest matching token wins; input no token matches is
reported as ERROR tokens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if grammarFile == "" {
				return fmt.Errorf("--grammar is required")
			}
			grammar, err := ebnflex.LoadGrammar(grammarFile)
			if err != nil {
				return err
			}
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			skipKinds := make(map[string]bool, len(skip))
			for _, kind := range skip {
				skipKinds[kind] = true
			}

			tokens, err := ebnflex.NewLexer(grammar, data, name).Tokenize()
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			log.Infof("%s: %d tokens", name, len(tokens))

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				if skipKinds[tok.Kind] {
					continue
				}
				fmt.Fprintln(out, tok)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "token kinds to leave out of the output")

	return cmd
}
