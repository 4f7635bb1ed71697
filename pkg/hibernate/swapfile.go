package hibernate

import (
	"fmt"

	"github.com/mudler/hibernate/pkg/logger"
	"github.com/pkg/errors"
)

// CreateSwapfile allocates the swapfile, locks its permissions down,
// formats it and activates it. Each step is a precondition for the next,
// so the first failure aborts the whole provisioning. There is no cleanup
// of earlier steps, a half-provisioned file is left for the operator to
// inspect.
func CreateSwapfile(l logger.Interface, cfg Config, console Console) error {
	l.Infof("Creating %dG swapfile at %s", cfg.SwapSizeGB, cfg.Swapfile)
	for _, cmd := range []string{
		fmt.Sprintf("fallocate -l %dG %s", cfg.SwapSizeGB, cfg.Swapfile),
		fmt.Sprintf("chmod 600 %s", cfg.Swapfile),
		fmt.Sprintf("mkswap %s", cfg.Swapfile),
		fmt.Sprintf("swapon %s", cfg.Swapfile),
	} {
		if out, err := console.Run(cmd); err != nil {
			return errors.Wrapf(err, "while provisioning swapfile: %s", out)
		}
	}
	return nil
}
