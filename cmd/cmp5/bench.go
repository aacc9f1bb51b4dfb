package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/HorstBaerbel/compress/cmp5"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <input>",
		Short: "Compare cmp5's pipeline against reference compressors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := parseCodecList(codecsFlag)
			if err != nil {
				return err
			}
			src, err := readInput(args[0])
			if err != nil {
				return err
			}
			if len(src) == 0 {
				return fmt.Errorf("no source data in %s", args[0])
			}

			results := []benchResult{
				timeIt("cmp5", src, func(b []byte) ([]byte, error) {
					return pipeline.Compress(b), nil
				}),
				timeIt("flate", src, compressFlate),
				timeIt("gzip", src, compressGzip),
				timeIt("xz", src, compressXZ),
			}

			fmt.Printf("%-10s %12s %10s %10s\n", "codec", "bytes", "ratio", "time")
			for _, r := range results {
				if r.err != nil {
					fmt.Printf("%-10s error: %v\n", r.name, r.err)
					continue
				}
				ratio := 100 - 100*float64(r.size)/float64(len(src))
				fmt.Printf("%-10s %12d %9.1f%% %10s\n", r.name, r.size, ratio, r.elapsed)
			}
			return nil
		},
	}
	return cmd
}

type benchResult struct {
	name    string
	size    int
	elapsed time.Duration
	err     error
}

func timeIt(name string, src []byte, fn func([]byte) ([]byte, error)) benchResult {
	start := time.Now()
	out, err := fn(src)
	elapsed := time.Since(start)
	if err != nil {
		return benchResult{name: name, err: err, elapsed: elapsed}
	}
	return benchResult{name: name, size: len(out), elapsed: elapsed}
}

func compressFlate(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressGzip(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressXZ(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
