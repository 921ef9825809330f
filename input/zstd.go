package input

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdReader adapts *zstd.Decoder, whose Close returns nothing, to
// io.ReadCloser.
type zstdReader struct {
	*zstd.Decoder
}

func (z zstdReader) Close() error {
	z.Decoder.Close()
	return nil
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1), // streaming input is consumed sequentially
	)
	if err != nil {
		return nil, fmt.Errorf("open zstd stream: %w", err)
	}

	return zstdReader{zr}, nil
}
