// Kind

package k8s

import (
	"github.com/sololabs/demos2/util/auxi"
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

type kindEnv struct {
	cfg *setup.Configuration
}

func (k *kindEnv) executeCmd(args []string) error {
	return system.Execute(k.cfg.K8s.Tool, args...)
}

func (k *kindEnv) prepareConfigArgs(args []string) ([]string, error) {
	if k.cfg.Kind.Config == "" {
		return args, nil
	}

	configPath, err := setup.GenerateKindClusterConfig(k.cfg)
	if err != nil {
		return args, err
	}
	args = append(args, "--config", configPath)

	return args, nil
}

func (k *kindEnv) StartCluster() error {
	args := []string{
		"create",
		"cluster",
		"--name",
		k.cfg.K8s.ClusterName,
	}

	args, err := k.prepareConfigArgs(args)
	if err != nil {
		return err
	}

	return k.executeCmd(args)
}

// kind cannot suspend a cluster, stop means delete
func (k *kindEnv) StopCluster() error {
	return k.DeleteCluster()
}

func (k *kindEnv) DeleteCluster() error {
	args := []string{
		"delete",
		"cluster",
		"--name",
		k.cfg.K8s.ClusterName,
	}
	return k.executeCmd(args)
}

func (k *kindEnv) ClusterExists() (bool, error) {
	output, err := system.ExecuteGetOutput(k.cfg.K8s.Tool, "get", "clusters")
	if err != nil {
		return false, err
	}
	return auxi.Contains(auxi.SplitLines(output), k.cfg.K8s.ClusterName), nil
}

func NewKindEnv(cfg *setup.Configuration) (K8sEnvironment, error) {
	return &kindEnv{cfg: cfg}, nil
}
