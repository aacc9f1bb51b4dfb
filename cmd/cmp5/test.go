package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/HorstBaerbel/compress/cmp5"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	benchmarkFlag bool
	iterationsFlag int
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <input>",
		Short: "Compress then decompress a file and verify the round trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := parseCodecList(codecsFlag)
			if err != nil {
				return err
			}
			return dispatch(args[0], "", func(in, _ string) error {
				return runTest(in, pipeline)
			})
		},
	}
	cmd.Flags().BoolVarP(&benchmarkFlag, "benchmark", "b", false, "time compression and decompression")
	cmd.Flags().IntVarP(&iterationsFlag, "iterations", "n", 10, "iterations to run when benchmarking")
	return cmd
}

func runTest(in string, pipeline cmp5.Pipeline) error {
	src, err := readInput(in)
	if err != nil {
		return err
	}
	if len(src) == 0 {
		fmt.Printf("no source data, skipping %s\n", in)
		return nil
	}

	iterations := 1
	if benchmarkFlag {
		iterations = iterationsFlag
	}

	var bar *progressbar.ProgressBar
	if benchmarkFlag {
		bar = progressbar.Default(int64(2 * iterations))
	}

	var compressed []byte
	compressStart := time.Now()
	for i := 0; i < iterations; i++ {
		compressed = pipeline.Compress(src)
		if bar != nil {
			bar.Add(1)
		}
	}
	compressElapsed := time.Since(compressStart)

	ratio := 100 - 100*float64(len(compressed))/float64(len(src))
	bpc := 8 * float64(len(compressed)) / float64(len(src))
	fmt.Printf("%s: compressed to %d bytes (%.1f%%, %.2f bpc)\n", in, len(compressed), ratio, bpc)

	var decompressed []byte
	decompressStart := time.Now()
	for i := 0; i < iterations; i++ {
		decompressed, err = cmp5.Decompress(compressed)
		if err != nil {
			return fmt.Errorf("%s: decompress failed: %w", in, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	decompressElapsed := time.Since(decompressStart)

	if benchmarkFlag {
		fmt.Printf("compression took %s, decompression took %s (averaged over %d runs)\n",
			compressElapsed/time.Duration(iterations), decompressElapsed/time.Duration(iterations), iterations)
	}

	if !bytes.Equal(src, decompressed) {
		pos := 0
		for pos < len(src) && pos < len(decompressed) && src[pos] == decompressed[pos] {
			pos++
		}
		return fmt.Errorf("%s: decompressed data does not match input at byte %d", in, pos)
	}
	fmt.Printf("%s: round trip OK\n", in)
	return nil
}
