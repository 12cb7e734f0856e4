package main

import (
	"github.com/sololabs/demos2/util/executor"
	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/setup"
)

func main() {
	cfg, cmd, err := setup.CreateConfiguration(false)
	if err != nil {
		log.Error.Fatal(err)
	}

	err = executor.RunCommand(cmd, &cfg)
	if err != nil {
		log.Error.Fatal(err)
	}
}
