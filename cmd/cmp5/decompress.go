package main

import (
	"fmt"
	"log"

	"github.com/HorstBaerbel/compress/cmp5"
	"github.com/spf13/cobra"
)

func newDecompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a file, directory, or wildcard pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(args[0], args[1], func(in, out string) error {
				src, err := readInput(in)
				if err != nil {
					return err
				}
				if len(src) == 0 {
					log.Printf("no source data, skipping %s", in)
					return nil
				}
				result, err := cmp5.Decompress(src)
				if err != nil {
					return fmt.Errorf("%s: %w", in, err)
				}
				fmt.Printf("%s: %d -> %d bytes\n", in, len(src), len(result))
				return writeOutput(out, result)
			})
		},
	}
	return cmd
}
