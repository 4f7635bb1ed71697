package consoletests

import (
	"os/exec"

	"github.com/apex/log"
)

// Commands records every command line handed to the TestConsole, in order.
var Commands []string

// Outputs serves canned output for commands whose stdout callers capture.
var Outputs = map[string]string{}

// Failures makes the listed commands fail.
var Failures = map[string]error{}

type TestConsole struct {
}

func (s TestConsole) Run(cmd string, opts ...func(*exec.Cmd)) (string, error) {
	c := &exec.Cmd{}
	for _, o := range opts {
		o(c)
	}
	log.Debugf("test console: %s", cmd)
	Commands = append(Commands, cmd)
	if err, ok := Failures[cmd]; ok {
		return "", err
	}
	return Outputs[cmd], nil
}

func Reset() {
	Commands = []string{}
	Outputs = map[string]string{}
	Failures = map[string]error{}
}
