package utils

import (
	"os"

	"github.com/twpayne/go-vfs/v4"
)

// Exists reports whether the path is present on the given filesystem.
func Exists(fs vfs.FS, s string) bool {
	if _, err := fs.Stat(s); err != nil && os.IsNotExist(err) {
		return false
	}
	return true
}
