package build

import (
	"os"
	"time"
)

// FS supplies the file metadata the update walk needs. Implementations
// report modification times; ok is false when the file does not exist,
// and err covers every other failure (permissions, unreachable paths).
// Errors are returned as-is; the updater adds context when it knows
// whether the path was an input or an output.
type FS interface {
	ModTime(path string) (mtime time.Time, ok bool, err error)
}

// systemFS reads metadata from the host filesystem.
type systemFS struct{}

func (systemFS) ModTime(path string) (time.Time, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return info.ModTime(), true, nil
}

// SystemFS returns an FS backed by the host filesystem.
func SystemFS() FS {
	return systemFS{}
}
