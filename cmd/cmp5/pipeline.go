package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HorstBaerbel/compress/cmp5"
)

// parseCodecList builds a cmp5.Pipeline from a comma-separated codec name
// list, e.g. "rgb,delta,huffman" or "bwt:4096,mtf1,huffman:3". A codec may
// carry one colon-separated configuration argument, interpreted per codec
// (BWT's block size, LZSS's dictionary bits, Huffman's decode variant).
// The Huffman variant only sets the Variant field of the compress-side
// codec; it is not stored in the stream, and cmp5.Decompress always
// decodes Huffman with DecodeVariant3.
func parseCodecList(spec string) (cmp5.Pipeline, error) {
	var p cmp5.Pipeline
	if strings.TrimSpace(spec) == "" {
		return p, nil
	}
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		parts := strings.SplitN(name, ":", 2)
		codec, err := newCodecByName(parts[0], parts[1:])
		if err != nil {
			return p, err
		}
		p.Codecs = append(p.Codecs, codec)
	}
	return p, nil
}

func newCodecByName(name string, args []string) (cmp5.Codec, error) {
	switch strings.ToLower(name) {
	case "rgb", "rgbplanes":
		return cmp5.RGBPlanes{}, nil
	case "delta":
		return cmp5.Delta{}, nil
	case "mtf1":
		return cmp5.MTF1{}, nil
	case "rle0", "zerorle":
		return cmp5.ZeroRLE{}, nil
	case "bwt":
		blockSize := uint32(1 << 16)
		if len(args) > 0 {
			v, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid bwt block size %q: %w", args[0], err)
			}
			blockSize = uint32(v)
		}
		return cmp5.NewBWT(blockSize), nil
	case "huffman":
		variant := cmp5.DecodeVariant3
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("invalid huffman variant %q: %w", args[0], err)
			}
			variant = v
		}
		return cmp5.NewHuffman(variant), nil
	case "lzss":
		dictBits, matchBits := uint8(15), uint8(5)
		if len(args) > 0 {
			v, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid lzss dictionary bits %q: %w", args[0], err)
			}
			dictBits = uint8(v)
		}
		if len(args) > 1 {
			v, err := strconv.ParseUint(args[1], 10, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid lzss match-length bits %q: %w", args[1], err)
			}
			matchBits = uint8(v)
		}
		return cmp5.NewLZSS(dictBits, matchBits), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
