package unslpk

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zip"
)

const gzipExt = ".gz"

const irregularModes = os.ModeSocket | os.ModeDevice | os.ModeCharDevice | os.ModeNamedPipe

var bufioWriterPool = sync.Pool{
	New: func() interface{} {
		return bufio.NewWriterSize(nil, 32*1024)
	},
}

// unpackEntry materializes one package entry beneath folder.
//
// Only regular file entries produce output. Entries named *.gz are
// decompressed and written under the de-suffixed name; when that name ends
// in json the document is re-indented rather than copied byte for byte.
// Everything else is copied verbatim under its own file name.
func (u *Unpacker) unpackEntry(ctx context.Context, file *zip.File, folder string) (err error) {
	if file.Mode()&(os.ModeDir|os.ModeSymlink|irregularModes) != 0 {
		return nil
	}

	if filepath.IsAbs(filepath.Dir(filepath.FromSlash(file.Name))) {
		return ErrAbsoluteEntryPath
	}

	name := sanitizeEntryPath(file.Name)
	if name == "" {
		// Entries with neither a parent nor a file name produce no output
		// and no error. Candidate for stricter validation.
		return nil
	}

	path := filepath.Join(folder, name)

	// Workers race on shared ancestors; MkdirAll treats an existing
	// directory as success.
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}

	r, err := file.Open()
	if err != nil {
		return err
	}
	defer dclose(r, &err)

	if filepath.Ext(path) == gzipExt {
		target := strings.TrimSuffix(path, gzipExt)
		u.progress(OpDecompress, file.Name, target)

		gz, gerr := newGzipReader(r)
		if gerr != nil {
			return gerr
		}
		defer dclose(gz, &err)

		if strings.HasSuffix(target, "json") {
			var buf bytes.Buffer
			if err := reindentJSON(&buf, gz); err != nil {
				return err
			}
			if err := u.writeFile(ctx, target, &buf); err != nil {
				return err
			}
		} else if err := u.writeFile(ctx, target, gz); err != nil {
			return err
		}

		return restoreMetadata(target, file)
	}

	u.progress(OpCopy, file.Name, path)

	if err := u.writeFile(ctx, path, r); err != nil {
		return err
	}

	return restoreMetadata(path, file)
}

// writeFile streams r into a freshly created file at path, counting bytes
// and entries as they land.
func (u *Unpacker) writeFile(ctx context.Context, path string, r io.Reader) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer dclose(f, &err)

	bw := bufioWriterPool.Get().(*bufio.Writer)
	defer bufioWriterPool.Put(bw)

	bw.Reset(countWriter{f, &u.written, ctx})
	if _, err = bw.ReadFrom(r); err != nil {
		return err
	}

	err = bw.Flush()
	incOnSuccess(&u.entries, err)

	return err
}

// sanitizeEntryPath rewrites a stored entry path into a clean relative
// path. Empty, "." and ".." segments are dropped, so the result can never
// climb out of the output folder.
func sanitizeEntryPath(name string) string {
	var parts []string
	for _, p := range strings.Split(filepath.ToSlash(name), "/") {
		switch p {
		case "", ".", "..":
		default:
			parts = append(parts, p)
		}
	}
	return filepath.Join(parts...)
}
