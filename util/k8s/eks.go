// EKS via eksctl

package k8s

import (
	"strconv"

	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

type eksEnv struct {
	cfg *setup.Configuration
}

func (e *eksEnv) executeCmd(args []string) error {
	return system.Execute(e.cfg.K8s.Tool, args...)
}

func (e *eksEnv) StartCluster() error {
	args := []string{
		"create",
		"cluster",
		"--name", e.cfg.K8s.ClusterName,
		"--region", e.cfg.Eks.Region,
		"--node-type", e.cfg.Eks.NodeType,
		"--nodes", strconv.Itoa(e.cfg.Eks.Nodes),
	}
	// eksctl writes the new context into the kubeconfig on its own
	return e.executeCmd(args)
}

// eks has no suspend, stop means delete
func (e *eksEnv) StopCluster() error {
	return e.DeleteCluster()
}

func (e *eksEnv) DeleteCluster() error {
	args := []string{
		"delete",
		"cluster",
		"--name", e.cfg.K8s.ClusterName,
		"--region", e.cfg.Eks.Region,
	}
	return e.executeCmd(args)
}

func (e *eksEnv) ClusterExists() (bool, error) {
	args := []string{
		"get",
		"cluster",
		"--name", e.cfg.K8s.ClusterName,
		"--region", e.cfg.Eks.Region,
	}
	_, err := system.ExecuteGetOutput(e.cfg.K8s.Tool, args...)
	return err == nil, nil
}

func NewEksEnv(cfg *setup.Configuration) (K8sEnvironment, error) {
	return &eksEnv{cfg: cfg}, nil
}
