package unslpk

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoExtension is returned when the package path has no extension,
	// so no output folder name can be derived from it.
	ErrNoExtension = errors.New("package path has no extension to derive an output folder from")

	// ErrOutputIsFile is returned when the derived output folder path is
	// occupied by an existing regular file.
	ErrOutputIsFile = errors.New("output folder cannot be created: a file with the same name already exists")

	// ErrAbsoluteEntryPath is returned for entries whose stored parent path
	// is absolute. Such entries would be written outside the output folder.
	ErrAbsoluteEntryPath = errors.New("package entries with an absolute path will not be extracted")
)

var defaultDecompressor = flateDecompressor()

// Progress operations reported to the handler set with WithProgressHandler.
const (
	OpCopy       = "copy"
	OpDecompress = "decompress"
)

// Unpacker is an opinionated SLPK scene layer package extractor.
//
// Entries are partitioned into contiguous index ranges, one per worker, and
// extracted in parallel. Every worker reads through its own handle on the
// package file, so no locking is needed on the read path. Gzipped entries
// are decompressed on the way out and *.json.gz documents are re-indented
// for readability.
type Unpacker struct {
	// These two fields are accessed via atomic operations.
	// They are at the start of the struct so they are properly 8 byte aligned.
	written, entries int64

	filename string
	zr       *zip.ReadCloser
	options  unpackerOptions
}

// NewUnpacker opens an SLPK package and returns a new unpacker.
//
// Close() should be called to close the unpacker's underlying handle when
// done.
func NewUnpacker(filename string, opts ...UnpackerOption) (*Unpacker, error) {
	zr, err := openPackage(filename)
	if err != nil {
		return nil, err
	}

	u := &Unpacker{
		filename: filename,
		zr:       zr,
	}

	u.options.concurrency = runtime.GOMAXPROCS(0)
	for _, o := range opts {
		if err := o(&u.options); err != nil {
			zr.Close()
			return nil, err
		}
	}

	return u, nil
}

// openPackage opens an independent read handle on the package. Handles are
// never shared between workers: concurrent random access through one handle
// would need a locking discipline on the read path.
func openPackage(filename string) (*zip.ReadCloser, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}

	zr.RegisterDecompressor(zip.Deflate, defaultDecompressor)

	return zr, nil
}

// Files returns the entries within the package.
func (u *Unpacker) Files() []*zip.File {
	return u.zr.File
}

// Close closes the unpacker's own package handle. Handles opened by workers
// are closed as their ranges complete.
func (u *Unpacker) Close() error {
	return u.zr.Close()
}

// Written returns how many bytes and entries have been written to disk.
// Written can be called whilst extraction is in progress.
func (u *Unpacker) Written() (bytes, entries int64) {
	return atomic.LoadInt64(&u.written), atomic.LoadInt64(&u.entries)
}

// Unpack extracts every entry into a folder derived from the package path
// (the path minus its extension) and returns the number of entries written.
// A directory left behind by a previous extraction is deleted first, so
// re-running Unpack on the same package is idempotent.
//
// Workers own disjoint entry ranges and run to completion independently: a
// worker that fails abandons the rest of its own range, but the others keep
// going, and Unpack returns the first failure only after every worker has
// finished. The entry count returned alongside an error is the number of
// entries written before the run was declared failed.
func (u *Unpacker) Unpack(ctx context.Context) (int64, error) {
	folder, err := outputFolder(u.filename)
	if err != nil {
		return 0, err
	}

	var wg errgroup.Group
	for _, r := range splitRanges(len(u.zr.File), u.options.concurrency) {
		if r.empty() {
			continue
		}

		r := r
		wg.Go(func() error {
			return u.unpackRange(ctx, r, folder)
		})
	}

	err = wg.Wait()
	return atomic.LoadInt64(&u.entries), err
}

// unpackRange extracts the entries of one range, in ascending index order,
// through a handle owned by the calling worker.
func (u *Unpacker) unpackRange(ctx context.Context, r indexRange, folder string) (err error) {
	zr, err := openPackage(u.filename)
	if err != nil {
		return err
	}
	defer dclose(zr, &err)

	for i := r.start; i < r.end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := u.unpackEntry(ctx, zr.File[i], folder); err != nil {
			return err
		}
	}

	return nil
}

func (u *Unpacker) progress(op, source, target string) {
	if u.options.progressHandler != nil {
		u.options.progressHandler(op, source, target)
	}
}
