package system

import (
	"os/exec"

	"github.com/sololabs/demos2/util/log"
)

func ResolveCommand(cmd string) (string, error) {
	return exec.LookPath(cmd)
}

func DoesCommandExist(cmd string) bool {
	path, err := ResolveCommand(cmd)
	if err != nil {
		log.Error.Println(err)
		return false
	}
	return len(path) > 0
}
