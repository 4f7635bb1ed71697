package consoletests

import (
	"container/list"
	"errors"
	"os/exec"
	"regexp"

	. "github.com/onsi/gomega"
)

// CmdMock is one expected command and the output to serve for it.
type CmdMock struct {
	Cmd       string
	Output    string
	UseRegexp bool
}

// TestConsoleMock fails the test when commands arrive out of the expected
// order, which is what the setup sequence cares about.
type TestConsoleMock struct {
	Cmds *list.List
}

func New() *TestConsoleMock {
	return &TestConsoleMock{Cmds: list.New()}
}

func (s TestConsoleMock) AddCmd(cmd CmdMock) {
	s.Cmds.PushBack(&cmd)
}

func (s TestConsoleMock) AddCmds(cmds []CmdMock) {
	for _, cmd := range cmds {
		s.AddCmd(cmd)
	}
}

func (s TestConsoleMock) PopCmd() *CmdMock {
	e := s.Cmds.Front()
	if e == nil {
		return nil
	}
	s.Cmds.Remove(e)
	cmdMock := e.Value.(*CmdMock)
	return cmdMock
}

func (s TestConsoleMock) Run(cmd string, opts ...func(*exec.Cmd)) (string, error) {
	cmdMock := s.PopCmd()
	Expect(cmdMock).NotTo(BeNil())
	Expect(cmdMock.Cmd).ToNot(Equal(""))
	Expect(cmd).ToNot(Equal(""))
	if cmdMock.UseRegexp {
		if matched, _ := regexp.MatchString(cmdMock.Cmd, cmd); matched {
			return cmdMock.Output, nil
		}
	} else {
		if cmdMock.Cmd == cmd {
			return cmdMock.Output, nil
		}
	}

	Expect(cmd).To(Equal(cmdMock.Cmd))
	return "", errors.New("Unexpected command")
}
