// K3d

package k8s

import (
	"strings"

	"github.com/sololabs/demos2/util/auxi"
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

type k3dEnv struct {
	cfg *setup.Configuration
}

func (k *k3dEnv) executeCmd(args []string) error {
	return system.Execute(k.cfg.K8s.Tool, args...)
}

func (k *k3dEnv) StartCluster() error {
	args := []string{
		"cluster",
		"create",
		k.cfg.K8s.ClusterName,
	}
	return k.executeCmd(args)
}

func (k *k3dEnv) StopCluster() error {
	args := []string{
		"cluster",
		"stop",
		k.cfg.K8s.ClusterName,
	}
	return k.executeCmd(args)
}

func (k *k3dEnv) DeleteCluster() error {
	args := []string{
		"cluster",
		"delete",
		k.cfg.K8s.ClusterName,
	}
	return k.executeCmd(args)
}

func (k *k3dEnv) ClusterExists() (bool, error) {
	output, err := system.ExecuteGetOutput(k.cfg.K8s.Tool, "cluster", "list", "--no-headers")
	if err != nil {
		return false, err
	}

	for _, line := range auxi.SplitLines(output) {
		columns := strings.Fields(line)
		if len(columns) > 0 && columns[0] == k.cfg.K8s.ClusterName {
			return true, nil
		}
	}
	return false, nil
}

func NewK3dEnv(cfg *setup.Configuration) (K8sEnvironment, error) {
	return &k3dEnv{cfg: cfg}, nil
}
