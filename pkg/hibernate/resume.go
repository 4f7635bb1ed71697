package hibernate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mudler/hibernate/pkg/logger"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
)

// Matches one extent line of `filefrag -v`, capturing the physical start.
var extentLine = regexp.MustCompile(`^\s*\d+:\s+\d+\.\.\s*\d+:\s+(\d+)`)

// SwapUUID returns the UUID of the filesystem holding the swapfile. In
// preview mode it returns a placeholder, the command is only logged.
func SwapUUID(l logger.Interface, cfg Config, console Console) (string, error) {
	l.Info("Getting swap UUID")
	out, err := console.Run(fmt.Sprintf("findmnt -no UUID -T %s", cfg.Swapfile))
	if err != nil {
		return "", errors.Wrap(err, "querying swap UUID")
	}
	if cfg.Preview {
		return "<uuid>", nil
	}
	return strings.TrimSpace(out), nil
}

// ResumeOffset returns the physical start of the swapfile's first usable
// extent. A zero start means the extent map cannot back hibernation, so
// only the first non-zero value counts; none at all is a fatal condition
// the operator has to resolve (the swapfile needs to be recreated
// contiguously).
func ResumeOffset(l logger.Interface, cfg Config, console Console) (uint64, error) {
	l.Info("Calculating resume offset")
	out, err := console.Run(fmt.Sprintf("filefrag -v %s", cfg.Swapfile))
	if err != nil {
		return 0, errors.Wrap(err, "listing swapfile extents")
	}
	if cfg.Preview {
		return 0, nil
	}

	candidates := []string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		m := extentLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		candidates = append(candidates, m[1])
		offset, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil || offset == 0 {
			continue
		}
		l.Infof("Found resume offset: %d", offset)
		return offset, nil
	}

	l.Debugf("extent physical starts: %s", litter.Sdump(candidates))
	return 0, errors.New("no valid resume offset found")
}
