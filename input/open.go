package input

import (
	"io"
	"os"
)

// Open opens path and wraps it with the decompressor matching its file
// extension. Closing the returned reader closes both the decompressor and
// the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(f, DetectCodec(path))
	if err != nil {
		f.Close()
		return nil, err
	}

	return &fileReadCloser{Reader: r, decoder: r, file: f}, nil
}

type fileReadCloser struct {
	io.Reader
	decoder io.Closer
	file    *os.File
}

func (f *fileReadCloser) Close() error {
	derr := f.decoder.Close()
	ferr := f.file.Close()
	if derr != nil {
		return derr
	}

	return ferr
}
