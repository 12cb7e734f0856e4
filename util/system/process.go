package system

import (
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sololabs/demos2/util/log"
)

func WritePidFile(path string, pid int) error {
	contents := strconv.Itoa(pid) + "\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return errors.Wrapf(err, "cannot write pid file %s", path)
	}
	return nil
}

func ReadPidFile(path string) (int, error) {
	rawContents, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(rawContents)))
	if err != nil {
		return 0, errors.Wrapf(err, "pid file %s is corrupted", path)
	}
	return pid, nil
}

func IsProcessAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// signal 0 performs error checking only
	return process.Signal(syscall.Signal(0)) == nil
}

func TerminateProcess(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Signal(syscall.SIGTERM)
}

// stop the process recorded in the pid file and remove the file; a missing
// file or an already dead process is not an error
func TerminatePidFile(path string) error {
	if !DoesFileExist(path) {
		return nil
	}

	pid, err := ReadPidFile(path)
	if err != nil {
		log.Info.Printf("removing corrupted pid file %s: %s", path, err)
		return os.Remove(path)
	}

	if IsProcessAlive(pid) {
		if err := TerminateProcess(pid); err != nil {
			return errors.Wrapf(err, "cannot terminate process %d", pid)
		}
	} else {
		log.Info.Printf("pid file %s points at dead process %d", path, pid)
	}

	return os.Remove(path)
}
