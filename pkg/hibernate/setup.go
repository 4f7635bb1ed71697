package hibernate

import (
	"github.com/mudler/hibernate/pkg/logger"
	"github.com/mudler/hibernate/pkg/utils"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

// Setup runs the whole hibernation configuration sequence. Steps are
// strictly ordered and the first failure aborts the run, there is no
// rollback of steps that already completed.
func Setup(l logger.Interface, cfg Config, fs vfs.FS, console Console, confirm *Confirmer) error {
	if cfg.CreateSwapfile {
		if err := CreateSwapfile(l, cfg, console); err != nil {
			return err
		}
		if err := EnsureFstabEntry(l, cfg, fs, confirm); err != nil {
			return err
		}
	}

	if !cfg.Preview && !utils.Exists(fs, cfg.Swapfile) {
		return errors.Errorf("no swapfile at %s, run again with --create-swapfile", cfg.Swapfile)
	}

	uuid, err := SwapUUID(l, cfg, console)
	if err != nil {
		return err
	}
	offset, err := ResumeOffset(l, cfg, console)
	if err != nil {
		return err
	}

	cmdlinePatched, err := UpdateGrub(l, cfg, fs, console, confirm, uuid, offset)
	if err != nil {
		return err
	}
	if err := UpdateMkinitcpio(l, cfg, fs, console, confirm); err != nil {
		return err
	}

	switch {
	case cfg.Preview:
		l.Info("Hibernate setup preview complete")
	case !cmdlinePatched:
		l.Warn("Hibernate setup finished, but the kernel command line was left untouched. Resume parameters are NOT installed.")
	default:
		l.Info("Hibernate setup complete. Reboot to take effect: sudo reboot")
	}
	return nil
}
