package hibernate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mudler/hibernate/pkg/logger"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

const (
	grubCmdlineVar = "GRUB_CMDLINE_LINUX_DEFAULT"
	grubRegenCmd   = "update-grub"
)

var (
	cmdlineAssignmentRe = regexp.MustCompile(`^(` + grubCmdlineVar + `=)(["'])(.*)(["'])$`)
	resumeTokenRe       = regexp.MustCompile(`\s*resume=UUID=\S+`)
	resumeOffsetTokenRe = regexp.MustCompile(`\s*resume_offset=\S+`)
)

// cmdlineAssignment is one parsed NAME=<quote>tokens<quote> line. The quote
// character is kept as found and restored verbatim on render.
type cmdlineAssignment struct {
	prefix  string
	quote   string
	content string
}

// parseCmdlineAssignment returns ok=false when the line does not have the
// expected quoted shape. Go's regexp has no backreferences, so the opening
// and closing quotes are captured separately and compared here.
func parseCmdlineAssignment(line string) (cmdlineAssignment, bool) {
	m := cmdlineAssignmentRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil || m[2] != m[4] {
		return cmdlineAssignment{}, false
	}
	return cmdlineAssignment{prefix: m[1], quote: m[2], content: m[3]}, true
}

// setResume drops any resume/resume_offset tokens wherever they sit and
// appends the new pair, leaving every other token in its original order.
func (a cmdlineAssignment) setResume(uuid string, offset uint64) cmdlineAssignment {
	content := resumeTokenRe.ReplaceAllString(a.content, "")
	content = resumeOffsetTokenRe.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)

	resumeArgs := fmt.Sprintf("resume=UUID=%s resume_offset=%d", uuid, offset)
	if content != "" {
		content += " " + resumeArgs
	} else {
		content = resumeArgs
	}
	a.content = content
	return a
}

func (a cmdlineAssignment) String() string {
	return a.prefix + a.quote + a.content + a.quote
}

// UpdateGrub installs the resume parameters on the default kernel command
// line and regenerates the grub config. The returned bool reports whether a
// well-formed cmdline line was found at all: a malformed one is skipped
// with a warning rather than aborting, and the caller uses the flag to tell
// the operator that hibernation is not actually wired up in that case.
func UpdateGrub(l logger.Interface, cfg Config, fs vfs.FS, console Console, confirm *Confirmer, uuid string, offset uint64) (bool, error) {
	l.Infof("Updating %s", grubCmdlineVar)

	if cfg.Preview {
		l.Infof("Would modify %s to include resume=UUID=%s resume_offset=%d", cfg.GrubConfig, uuid, offset)
		if out, err := console.Run(grubRegenCmd); err != nil {
			return false, errors.Wrapf(err, "regenerating grub config: %s", out)
		}
		return true, nil
	}

	lines, err := readLines(fs, cfg.GrubConfig)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", cfg.GrubConfig)
	}

	newLines := append([]string{}, lines...)
	matched := false
	for i, line := range newLines {
		if !strings.HasPrefix(line, grubCmdlineVar) {
			continue
		}
		asg, ok := parseCmdlineAssignment(line)
		if !ok {
			l.Warnf("Unexpected format in %s, skipping safe modification", grubCmdlineVar)
			continue
		}
		newLines[i] = asg.setResume(uuid, offset).String()
		matched = true
		break
	}

	if !confirm.Confirm(cfg.GrubConfig, lines, newLines) {
		l.Warnf("Skipped writing to %s", cfg.GrubConfig)
		return matched, nil
	}
	if err := writeLines(fs, cfg.GrubConfig, newLines); err != nil {
		return matched, errors.Wrapf(err, "writing %s", cfg.GrubConfig)
	}
	if out, err := console.Run(grubRegenCmd); err != nil {
		return matched, errors.Wrapf(err, "regenerating grub config: %s", out)
	}
	return matched, nil
}
