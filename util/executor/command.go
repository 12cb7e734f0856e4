package executor

import (
	"errors"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/setup"
)

func RunCommand(cmd common.Command, cfg *setup.Configuration) error {
	switch cmd {
	case common.Start:
		return start(cfg)
	case common.Stop:
		return stop(cfg)
	case common.Deploy:
		return deploy(cfg)
	case common.Smoke:
		return runSmokeChecks(cfg)
	default:
		return errors.New("internal error: unknown command")
	}
}
