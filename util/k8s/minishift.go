// Minishift

package k8s

import (
	"strings"

	"github.com/sololabs/demos2/util/auxi"
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

type minishiftEnv struct {
	cfg *setup.Configuration
}

func (m *minishiftEnv) executeCmd(args []string) error {
	return system.Execute(m.cfg.K8s.Tool, args...)
}

func (m *minishiftEnv) StartCluster() error {
	args := []string{
		"start",
		"--profile",
		m.cfg.K8s.ClusterName,
	}

	if err := m.executeCmd(args); err != nil {
		return err
	}

	// grant cluster-admin to the developer user, the demo needs to create
	// cluster-scoped gloo resources
	return system.Execute("oc", "adm", "policy", "add-cluster-role-to-user", "cluster-admin", "developer")
}

func (m *minishiftEnv) StopCluster() error {
	args := []string{
		"stop",
		"--profile",
		m.cfg.K8s.ClusterName,
	}
	return m.executeCmd(args)
}

func (m *minishiftEnv) DeleteCluster() error {
	args := []string{
		"delete",
		"--profile",
		m.cfg.K8s.ClusterName,
		"--force",
	}
	return m.executeCmd(args)
}

func (m *minishiftEnv) ClusterExists() (bool, error) {
	output, err := system.ExecuteGetOutput(m.cfg.K8s.Tool, "profile", "list")
	if err != nil {
		return false, err
	}

	for _, line := range auxi.SplitLines(output) {
		// line format: '- profilename	Running'
		line = strings.TrimPrefix(line, "- ")
		columns := strings.Fields(line)
		if len(columns) > 0 && columns[0] == m.cfg.K8s.ClusterName {
			return true, nil
		}
	}
	return false, nil
}

func NewMinishiftEnv(cfg *setup.Configuration) (K8sEnvironment, error) {
	return &minishiftEnv{cfg: cfg}, nil
}
