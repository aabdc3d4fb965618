package main

import (
	"fmt"

	"github.com/dhamidi/byteparse/parse"
	"github.com/spf13/cobra"
)

func newSplitCmd() *cobra.Command {
	var on string
	var count bool

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split input on a byte and print each segment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			delim, err := byteFlag("on", on)
			if err != nil {
				return err
			}

			p := parse.NewBytesParser(data)
			segments := parse.MapAndCollect(p.Split(delim), func(seg *parse.Segment) []byte {
				return seg.Record().ConsumeToSlice()
			})
			log.Infof("%s: %d segments", name, len(segments))

			out := cmd.OutOrStdout()
			if count {
				fmt.Fprintln(out, len(segments))
				return nil
			}
			for _, seg := range segments {
				fmt.Fprintf(out, "%q\n", seg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", `\n`, "delimiter byte")
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of segments")

	return cmd
}
