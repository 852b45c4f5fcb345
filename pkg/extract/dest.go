package extract

import (
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission set used for created destination files.
const DefaultFileMode os.FileMode = 0o700

// DestinationPath returns the path of the copy of source inside dir.
func DestinationPath(dir, source string) string {
	return filepath.Join(dir, filepath.Base(source))
}

// CreateDestination creates a new file for the copy of source inside dir.
// It fails if the file already exists or dir is missing.
func CreateDestination(dir, source string, perm os.FileMode) (*os.File, error) {
	path := DestinationPath(dir, source)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm) // #nosec G304 -- user-provided destination is expected
	if err != nil {
		return nil, ioErr("create", err)
	}
	return f, nil
}
