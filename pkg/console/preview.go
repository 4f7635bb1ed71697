package console

import (
	"os/exec"

	"github.com/mudler/hibernate/pkg/logger"
	"github.com/sirupsen/logrus"
)

// PreviewConsole logs every command it is handed and executes none of
// them. Wiring it in place of the StandardConsole turns the whole run
// into a dry run, regeneration commands included.
type PreviewConsole struct {
	logger logger.Interface
}

type PreviewConsoleOptions func(*PreviewConsole) error

func PreviewWithLogger(i logger.Interface) PreviewConsoleOptions {
	return func(pc *PreviewConsole) error {
		pc.logger = i
		return nil
	}
}

func NewPreviewConsole(opts ...PreviewConsoleOptions) *PreviewConsole {
	c := &PreviewConsole{
		logger: logrus.New(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (p PreviewConsole) Run(cmd string, opts ...func(cmd *exec.Cmd)) (string, error) {
	p.logger.Infof("[preview] would run: %s", cmd)
	return "", nil
}
