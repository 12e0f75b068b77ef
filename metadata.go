package unslpk

import (
	"os"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/saracen/zipextra"
)

// restoreMetadata stamps permissions and the modification time from the
// entry's header onto the extracted file. Ownership from InfoZIP unix extra
// fields is restored on a best-effort basis: chown needs privileges the
// process usually lacks.
func restoreMetadata(path string, file *zip.File) error {
	if err := os.Chmod(path, file.Mode().Perm()); err != nil {
		return err
	}

	// A zero Modified leaves the mtime untouched.
	if err := os.Chtimes(path, time.Now(), file.Modified); err != nil {
		return err
	}

	fields, err := zipextra.Parse(file.Extra)
	if err != nil {
		return err
	}

	unixfield, ok := fields[zipextra.ExtraFieldUnixN]
	if !ok {
		return nil
	}

	unix, err := unixfield.InfoZIPNewUnix()
	if err != nil {
		return err
	}

	_ = os.Chown(path, int(unix.Uid.Int64()), int(unix.Gid.Int64()))

	return nil
}
