package cmp5

import "encoding/binary"

// magic identifies a cmp5 container: bytes 'C','M','P','5'.
var magic = [4]byte{'C', 'M', 'P', '5'}

// Pipeline is an ordered sequence of codecs applied in order on Compress
// and in reverse on Decompress.
type Pipeline struct {
	Codecs []Codec
}

// Compress runs src through every codec in order and wraps the result in
// a self-describing container: magic, uncompressed length, codec count,
// codec identifiers in encode order, then the final codec's output.
func (p Pipeline) Compress(src []byte) []byte {
	out := append([]byte(nil), src...)
	for _, c := range p.Codecs {
		out = c.Encode(out)
	}

	header := make([]byte, 0, 9+len(p.Codecs))
	header = append(header, magic[:]...)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(src)))
	header = append(header, lenBuf[:]...)
	header = append(header, byte(len(p.Codecs)))
	for _, c := range p.Codecs {
		header = append(header, c.ID())
	}
	return append(header, out...)
}

// Decompress reverses Compress: it reads the container header, applies
// each stored codec's Decode in reverse order, and checks the result
// against the recorded uncompressed length.
func Decompress(src []byte) (out []byte, err error) {
	defer errRecover(&err)

	if len(src) < 9 {
		return nil, ErrTruncated
	}
	if src[0] != magic[0] || src[1] != magic[1] || src[2] != magic[2] || src[3] != magic[3] {
		return nil, ErrBadMagic
	}
	uncompressedLen := binary.LittleEndian.Uint32(src[4:8])
	n := int(src[8])
	if len(src) < 9+n {
		return nil, ErrTruncated
	}
	ids := src[9 : 9+n]
	payload := src[9+n:]

	for i := n - 1; i >= 0; i-- {
		codec, ok := byID(ids[i])
		if !ok {
			return nil, ErrUnknownCodec
		}
		payload = codec.Decode(payload)
	}

	if uint32(len(payload)) != uncompressedLen {
		return nil, ErrLengthMismatch
	}
	return payload, nil
}
