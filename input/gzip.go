package input

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

func newGzipReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}

	return zr, nil
}
