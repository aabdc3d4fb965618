package main

import (
	"errors"
	"fmt"

	"github.com/dhamidi/byteparse/format"
	"github.com/dhamidi/byteparse/grammar/kv"
	"github.com/spf13/cobra"
)

// kvFlags are shared by the kv and lsp commands.
type kvFlags struct {
	separator string
	comment   string
	strict    bool
}

func (f *kvFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.separator, "separator", ":", "byte between key and value")
	cmd.Flags().StringVar(&f.comment, "comment", "", "byte starting a comment line (empty disables comments)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject lines without separator and empty keys")
}

func (f *kvFlags) options() ([]kv.Option, error) {
	sep, err := byteFlag("separator", f.separator)
	if err != nil {
		return nil, err
	}
	opts := []kv.Option{kv.WithSeparator(sep)}
	if f.comment != "" {
		c, err := byteFlag("comment", f.comment)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kv.WithComment(c))
	}
	if f.strict {
		opts = append(opts, kv.WithStrict())
	}
	return opts, nil
}

func newKVCmd() *cobra.Command {
	var flags kvFlags
	var outputFormat string
	var check bool

	cmd := &cobra.Command{
		Use:   "kv [file]",
		Short: "Parse key: value lines",
		Long: `Parse line-oriented "key: value" text and print the pairs.

Reads stdin when no file is given. With --check, every problem in the
input is reported instead and the command fails if any is an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			parser := kv.New(opts...)

			if check {
				failed := false
				for _, issue := range parser.Validate(string(data)) {
					fmt.Fprintf(out, "%s:%s\n", name, issue)
					if issue.Severity == kv.SeverityError {
						failed = true
					}
				}
				if failed {
					return errors.New("kv: input has errors")
				}
				return nil
			}

			pairs, err := parser.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", name, err)
			}
			log.Infof("%s: %d pairs", name, len(pairs))

			enc, err := format.New(outputFormat, out)
			if err != nil {
				return err
			}
			return enc.Encode(pairs)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&check, "check", false, "report problems instead of printing pairs")

	return cmd
}
