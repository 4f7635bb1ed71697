package hibernate

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultSwapfile   = "/swapfile"
	DefaultFstab      = "/etc/fstab"
	DefaultGrubConfig = "/etc/default/grub"
	DefaultMkinitcpio = "/etc/mkinitcpio.conf"
	DefaultSwapSizeGB = 32
)

// Config carries the fixed paths and the run modes. It is built once from
// the CLI flags and passed by value everywhere, there is no process-global
// state.
type Config struct {
	Swapfile   string
	Fstab      string
	GrubConfig string
	Mkinitcpio string

	SwapSizeGB     int
	CreateSwapfile bool
	Preview        bool
	NonInteractive bool
}

func DefaultConfig() Config {
	return Config{
		Swapfile:   DefaultSwapfile,
		Fstab:      DefaultFstab,
		GrubConfig: DefaultGrubConfig,
		Mkinitcpio: DefaultMkinitcpio,
		SwapSizeGB: DefaultSwapSizeGB,
	}
}

func (c Config) Validate() error {
	var errs error
	if c.SwapSizeGB <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("swap size must be a positive number of gigabytes, got %d", c.SwapSizeGB))
	}
	for _, p := range []struct{ name, path string }{
		{"swapfile", c.Swapfile},
		{"fstab", c.Fstab},
		{"grub config", c.GrubConfig},
		{"mkinitcpio config", c.Mkinitcpio},
	} {
		if p.path == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s path cannot be empty", p.name))
		}
	}
	return errs
}
