// Command cmp5 drives the cmp5 codec pipeline over files, directories, and
// wildcard patterns: compress, decompress, round-trip test, and benchmark
// against reference compressors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	codecsFlag string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cmp5",
		Short: "A composable byte-stream compression toolkit",
		Long: "cmp5 drives a pipeline of reversible byte-stream codecs (RGB-planes, delta,\n" +
			"move-to-front, zero run-length, Burrows-Wheeler, Huffman, LZSS) over files,\n" +
			"directories, or wildcard patterns, framing the result in a self-describing container.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic information")
	root.PersistentFlags().StringVarP(&codecsFlag, "codecs", "c", "bwt,mtf1,huffman",
		"comma-separated codec pipeline, e.g. rgb,delta,huffman or bwt:65536,mtf1,huffman")

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())
	root.AddCommand(newTestCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cmp5:", err)
		os.Exit(1)
	}
}
