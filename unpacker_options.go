package unslpk

import "errors"

var ErrMinConcurrency = errors.New("concurrency must be at least 1")

// UnpackerOption is an option used when creating an unpacker.
type UnpackerOption func(*unpackerOptions) error

type unpackerOptions struct {
	concurrency     int
	progressHandler func(op, source, target string)
}

// WithConcurrency sets the number of workers the package's entries are
// partitioned across. The default is set to GOMAXPROCS.
func WithConcurrency(n int) UnpackerOption {
	return func(o *unpackerOptions) error {
		if n <= 0 {
			return ErrMinConcurrency
		}
		o.concurrency = n
		return nil
	}
}

// WithProgressHandler sets a handler invoked once per materialized entry
// with the operation performed (OpCopy or OpDecompress), the entry's name
// within the package and the path it was written to. Workers call the
// handler concurrently; it must be safe for concurrent use. The handler is
// observational only and cannot affect the run.
func WithProgressHandler(fn func(op, source, target string)) UnpackerOption {
	return func(o *unpackerOptions) error {
		o.progressHandler = fn
		return nil
	}
}
