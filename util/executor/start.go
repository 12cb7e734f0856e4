package executor

import (
	"github.com/sololabs/demos2/util/k8s"
	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/setup"
)

func start(cfg *setup.Configuration) error {
	env, err := k8s.GetEnvironment(cfg)
	if err != nil {
		return err
	}

	if cfg.K8s.DeleteAtStart {
		exists, err := env.ClusterExists()
		if err != nil {
			return err
		}
		if exists {
			if err := env.DeleteCluster(); err != nil {
				return err
			}
		}
	}

	if err := env.StartCluster(); err != nil {
		return err
	}

	kubectl := k8s.Kubectl{}
	if info, err := kubectl.ClusterInfo(); err == nil {
		log.Info.Print(info)
	}

	return deploy(cfg)
}
