package system

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/sololabs/demos2/util/log"
)

// Every external tool invocation goes through this package so that the
// console shows the exact command line before it runs.

func logCommand(name string, args []string) {
	log.Info.Printf("%s %s", name, strings.Join(args, " "))
}

// ExecuteGetOutput runs the command and returns its combined stdout+stderr.
// The raw output is returned even on failure, callers often need it for
// diagnostics.
func ExecuteGetOutput(name string, args ...string) (string, error) {
	logCommand(name, args)
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return string(output), errors.Wrapf(err, "%s %s", name, strings.Join(args, " "))
	}
	return string(output), nil
}

// Execute runs the command and forwards whatever it printed to the logs.
func Execute(name string, args ...string) error {
	output, err := ExecuteGetOutput(name, args...)
	if output != "" {
		if err != nil {
			log.Error.Print(output)
		} else {
			log.Info.Print(output)
		}
	}
	return err
}
