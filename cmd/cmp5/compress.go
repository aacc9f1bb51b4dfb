package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func newCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file, directory, or wildcard pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := parseCodecList(codecsFlag)
			if err != nil {
				return err
			}
			return dispatch(args[0], args[1], func(in, out string) error {
				src, err := readInput(in)
				if err != nil {
					return err
				}
				if len(src) == 0 {
					log.Printf("no source data, skipping %s", in)
					return nil
				}
				result := pipeline.Compress(src)
				ratio := 100 - 100*float64(len(result))/float64(len(src))
				bpc := 8 * float64(len(result)) / float64(len(src))
				fmt.Printf("%s: %d -> %d bytes (%.1f%%, %.2f bpc)\n", in, len(src), len(result), ratio, bpc)
				return writeOutput(out, result)
			})
		},
	}
	return cmd
}
