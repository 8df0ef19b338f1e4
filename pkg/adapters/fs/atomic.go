package fs

import (
	"errors"
	"fmt"
	"os"
)

// createExclusive creates an empty file at filename, failing if anything is
// already there. An existing regular file is not an error: created is false
// and the file is left untouched. The check and the creation are a single
// O_EXCL open, so a concurrent creator can never be truncated.
func createExclusive(filename string, perm os.FileMode) (created bool, err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err == nil {
		if err := f.Close(); err != nil {
			return true, fmt.Errorf("close: %w", err)
		}
		return true, nil
	}

	if !errors.Is(err, os.ErrExist) {
		return false, unwrapPathError(err, filename)
	}

	info, statErr := os.Stat(filename)
	if statErr != nil {
		return false, unwrapPathError(statErr, filename)
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("exists and is not a regular file (%s)", info.Mode().Type())
	}
	return false, nil
}
