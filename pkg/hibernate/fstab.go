package hibernate

import (
	"fmt"
	"strings"

	"github.com/mudler/hibernate/pkg/logger"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

// EnsureFstabEntry makes sure the swapfile has a durable mount-table entry.
// Existing lines are never touched or reordered, a line already referencing
// the swapfile makes this a no-op, so calling it on every run is safe.
func EnsureFstabEntry(l logger.Interface, cfg Config, fs vfs.FS, confirm *Confirmer) error {
	l.Infof("Ensuring swapfile is in %s", cfg.Fstab)
	entry := fmt.Sprintf("%s none swap defaults 0 0", cfg.Swapfile)

	if cfg.Preview {
		l.Infof("Would append to %s: %s", cfg.Fstab, entry)
		return nil
	}

	lines, err := readLines(fs, cfg.Fstab)
	if err != nil {
		return errors.Wrapf(err, "reading %s", cfg.Fstab)
	}
	for _, line := range lines {
		if strings.Contains(line, cfg.Swapfile) {
			l.Info("Swapfile already in fstab")
			return nil
		}
	}

	newLines := append(append([]string{}, lines...), entry)
	if !confirm.Confirm(cfg.Fstab, lines, newLines) {
		l.Warnf("Skipped writing to %s", cfg.Fstab)
		return nil
	}
	return writeLines(fs, cfg.Fstab, newLines)
}
