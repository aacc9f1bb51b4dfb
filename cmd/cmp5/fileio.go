package main

import (
	"hash/adler32"
	"log"
	"os"

	"github.com/HorstBaerbel/compress/cmp5/internal/testutil"
)

// randomDataSize matches the original driver's synthetic "random" input
// token, used to benchmark codecs without needing a sample file on disk.
const randomDataSize = 256 * 1024

func readInput(path string) ([]byte, error) {
	if path == "random" {
		data := testutil.NewRand(3571).Bytes(randomDataSize)
		if verbose {
			log.Printf("generated %d bytes of test data", len(data))
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("read %d bytes from %s (adler32 %08x)", len(data), path, adler32.Checksum(data))
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	if verbose {
		log.Printf("wrote %d bytes to %s (adler32 %08x)", len(data), path, adler32.Checksum(data))
	}
	return nil
}
