package hibernate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/mudler/hibernate/pkg/logger"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

const (
	hooksVarPrefix     = "HOOKS="
	mkinitcpioRegenCmd = "mkinitcpio -P"

	resumeHook      = "resume"
	encryptHook     = "encrypt"
	filesystemsHook = "filesystems"
)

var hookListRe = regexp.MustCompile(`\((.*?)\)`)

// parseHookList extracts the parenthesized token list from a HOOKS line.
// ok is false when the line carries no parenthesized group.
func parseHookList(line string) ([]string, bool) {
	m := hookListRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return strings.Fields(m[1]), true
}

func renderHookList(hooks []string) string {
	return fmt.Sprintf("HOOKS=(%s)", strings.Join(hooks, " "))
}

// insertResume places the resume hook where it works at boot: right after
// encrypt when present (the swap is only readable once the volume is
// unlocked), otherwise right before filesystems, otherwise last.
func insertResume(hooks []string) []string {
	idx := len(hooks)
	if i := slices.Index(hooks, encryptHook); i >= 0 {
		idx = i + 1
	} else if i := slices.Index(hooks, filesystemsHook); i >= 0 {
		idx = i
	}

	out := make([]string, 0, len(hooks)+1)
	out = append(out, hooks[:idx]...)
	out = append(out, resumeHook)
	out = append(out, hooks[idx:]...)
	return out
}

// UpdateMkinitcpio inserts the resume hook into the initramfs hook list and
// regenerates the initramfs. Hook order matters, hooks run in listed order
// at boot. A HOOKS line without a parenthesized list is skipped, a list
// already carrying resume is a no-op without regeneration.
func UpdateMkinitcpio(l logger.Interface, cfg Config, fs vfs.FS, console Console, confirm *Confirmer) error {
	l.Infof("Ensuring '%s' hook in %s", resumeHook, cfg.Mkinitcpio)

	if cfg.Preview {
		l.Infof("Would ensure '%s' is included in %s", resumeHook, cfg.Mkinitcpio)
		if out, err := console.Run(mkinitcpioRegenCmd); err != nil {
			return errors.Wrapf(err, "regenerating initramfs: %s", out)
		}
		return nil
	}

	lines, err := readLines(fs, cfg.Mkinitcpio)
	if err != nil {
		return errors.Wrapf(err, "reading %s", cfg.Mkinitcpio)
	}

	newLines := append([]string{}, lines...)
	for i, line := range newLines {
		if !strings.HasPrefix(line, hooksVarPrefix) {
			continue
		}
		hooks, ok := parseHookList(line)
		if !ok {
			continue
		}
		if slices.Contains(hooks, resumeHook) {
			l.Infof("'%s' hook already present", resumeHook)
			return nil
		}
		newLines[i] = renderHookList(insertResume(hooks))
		break
	}

	if !confirm.Confirm(cfg.Mkinitcpio, lines, newLines) {
		l.Warnf("Skipped writing to %s", cfg.Mkinitcpio)
		return nil
	}
	if err := writeLines(fs, cfg.Mkinitcpio, newLines); err != nil {
		return errors.Wrapf(err, "writing %s", cfg.Mkinitcpio)
	}
	if out, err := console.Run(mkinitcpioRegenCmd); err != nil {
		return errors.Wrapf(err, "regenerating initramfs: %s", out)
	}
	return nil
}
