// Copyright © 2024 Ettore Di Giacinto <mudler@mocaccino.org>
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, see <http://www.gnu.org/licenses/>.

package console

import (
	"os/exec"

	"github.com/google/shlex"
	"github.com/mudler/hibernate/pkg/logger"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type StandardConsole struct {
	logger logger.Interface
}

type StandardConsoleOptions func(*StandardConsole) error

func WithLogger(i logger.Interface) StandardConsoleOptions {
	return func(sc *StandardConsole) error {
		sc.logger = i
		return nil
	}
}

func NewStandardConsole(opts ...StandardConsoleOptions) *StandardConsole {
	c := &StandardConsole{
		logger: logrus.New(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Run tokenizes cmd and executes it directly, without an intermediate
// shell. A non-zero exit is returned as an error together with the
// combined output.
func (s StandardConsole) Run(cmd string, opts ...func(cmd *exec.Cmd)) (string, error) {
	s.logger.Debugf("running command `%s`", cmd)
	args, err := shlex.Split(cmd)
	if err != nil {
		return "", errors.Wrapf(err, "cannot tokenize `%s`", cmd)
	}
	if len(args) == 0 {
		return "", errors.New("empty command")
	}
	c := exec.Command(args[0], args[1:]...)
	for _, o := range opts {
		o(c)
	}
	out, err := c.CombinedOutput()
	if err != nil {
		return string(out), errors.Wrapf(err, "failed to run %s", cmd)
	}

	return string(out), nil
}
