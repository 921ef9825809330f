package input

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec identifies the compression wrapping of an input stream.
type Codec uint8

const (
	CodecNone Codec = iota // plain text, no compression
	CodecGzip              // gzip stream (.gz)
	CodecZstd              // Zstandard stream (.zst)
	CodecS2                // S2 stream (.s2)
	CodecLZ4               // LZ4 frame stream (.lz4)
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecGzip:
		return "Gzip"
	case CodecZstd:
		return "Zstd"
	case CodecS2:
		return "S2"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// DetectCodec picks the codec matching the file extension of path.
// Unrecognized extensions mean an uncompressed input.
func DetectCodec(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CodecGzip
	case ".zst", ".zstd":
		return CodecZstd
	case ".s2":
		return CodecS2
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// NewReader wraps r with the streaming decompressor for codec c.
//
// The returned reader's Close releases decompressor state only; closing the
// underlying reader stays the caller's responsibility (Open handles both).
func NewReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecGzip:
		return newGzipReader(r)
	case CodecZstd:
		return newZstdReader(r)
	case CodecS2:
		return newS2Reader(r)
	case CodecLZ4:
		return newLZ4Reader(r)
	default:
		return nil, fmt.Errorf("unsupported input codec: %s", c)
	}
}
