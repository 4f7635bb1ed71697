package hibernate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mudler/hibernate/pkg/logger"
	"github.com/pmezard/go-difflib/difflib"
)

// Confirmer presents a proposed file change as a unified diff and asks the
// operator whether to proceed. It only talks to the console, committing the
// change is up to the caller.
type Confirmer struct {
	logger logger.Interface
	config Config
	in     io.Reader
	out    io.Writer
}

func NewConfirmer(l logger.Interface, cfg Config, in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{logger: l, config: cfg, in: in, out: out}
}

// Confirm returns true when the change to path should be written.
// In preview and non-interactive mode it always consents (preview callers
// never reach the write anyway); with no difference between old and new it
// always refuses.
func (c *Confirmer) Confirm(path string, oldLines, newLines []string) bool {
	if c.config.Preview || c.config.NonInteractive {
		c.logger.Infof("Would write changes to %s", path)
		return true
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(oldLines, "\n")),
		B:        difflib.SplitLines(strings.Join(newLines, "\n")),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		c.logger.Errorf("Cannot compute diff for %s: %s", path, err.Error())
		return false
	}
	if diff == "" {
		c.logger.Infof("No changes needed for %s", path)
		return false
	}

	fmt.Fprintln(c.out, "\n--- Diff ---")
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(c.out, color.GreenString(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(c.out, color.RedString(line))
		default:
			fmt.Fprintln(c.out, line)
		}
	}

	fmt.Fprintf(c.out, "%s ", color.New(color.Bold).Sprintf("Apply these changes to %s? (y/N):", path))
	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
