package hibernate

import (
	"os"
	"os/exec"
	"strings"

	"github.com/twpayne/go-vfs/v4"
)

// Console runs external commands and returns their combined output.
// pkg/console provides the standard and the preview implementations.
type Console interface {
	Run(string, ...func(*exec.Cmd)) (string, error)
}

func readLines(fs vfs.FS, path string) ([]string, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n"), nil
}

// writeLines rewrites path keeping its current permission bits.
func writeLines(fs vfs.FS, path string, lines []string) error {
	mode := os.FileMode(0644)
	if info, err := fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return fs.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), mode)
}
