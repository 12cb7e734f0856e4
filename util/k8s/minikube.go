// Minikube

package k8s

import (
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

type minikubeEnv struct {
	cfg *setup.Configuration
}

func (m *minikubeEnv) executeCmd(args []string) error {
	return system.Execute(m.cfg.K8s.Tool, args...)
}

func (m *minikubeEnv) StartCluster() error {
	args := []string{
		"start",
		"-p",
		m.cfg.K8s.ClusterName,
	}
	return m.executeCmd(args)
}

func (m *minikubeEnv) StopCluster() error {
	args := []string{
		"stop",
		"-p",
		m.cfg.K8s.ClusterName,
	}
	return m.executeCmd(args)
}

func (m *minikubeEnv) DeleteCluster() error {
	args := []string{
		"delete",
		"-p",
		m.cfg.K8s.ClusterName,
	}
	return m.executeCmd(args)
}

func (m *minikubeEnv) ClusterExists() (bool, error) {
	_, err := system.ExecuteGetOutput(m.cfg.K8s.Tool, "status", "-p", m.cfg.K8s.ClusterName)
	return err == nil, nil
}

func NewMinikubeEnv(cfg *setup.Configuration) (K8sEnvironment, error) {
	return &minikubeEnv{cfg}, nil
}
