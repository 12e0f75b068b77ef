package unslpk

import (
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// Packages hold thousands of small entries, so decompressor state is pooled
// and reset rather than reallocated per entry.

type flateReader struct {
	pool *sync.Pool
	io.ReadCloser
}

func (fr *flateReader) Reset(r io.Reader) {
	fr.ReadCloser.(flate.Resetter).Reset(r, nil)
}

func (fr *flateReader) Close() error {
	err := fr.ReadCloser.Close()
	fr.pool.Put(fr)
	return err
}

// flateDecompressor returns a pooled zip.Decompressor for deflated
// container entries.
func flateDecompressor() func(r io.Reader) io.ReadCloser {
	pool := &sync.Pool{}
	pool.New = func() interface{} {
		return &flateReader{pool, flate.NewReader(nil)}
	}

	return func(r io.Reader) io.ReadCloser {
		fr := pool.Get().(*flateReader)
		fr.Reset(r)
		return fr
	}
}

var gzipReaderPool sync.Pool

type gzipReader struct {
	*gzip.Reader
}

func (gr *gzipReader) Close() error {
	err := gr.Reader.Close()
	gzipReaderPool.Put(gr)
	return err
}

// newGzipReader returns a pooled reader decompressing the gzip stream r.
// Closing it returns the reader to the pool.
func newGzipReader(r io.Reader) (*gzipReader, error) {
	if gr, ok := gzipReaderPool.Get().(*gzipReader); ok {
		if err := gr.Reset(r); err != nil {
			gzipReaderPool.Put(gr)
			return nil, err
		}
		return gr, nil
	}

	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &gzipReader{zr}, nil
}
