// GKE via gcloud

package k8s

import (
	"strconv"

	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

type gkeEnv struct {
	cfg *setup.Configuration
}

func (g *gkeEnv) executeCmd(args []string) error {
	return system.Execute(g.cfg.K8s.Tool, args...)
}

func (g *gkeEnv) projectZoneArgs(args []string) []string {
	return append(args,
		"--project", g.cfg.Gke.Project,
		"--zone", g.cfg.Gke.Zone,
	)
}

func (g *gkeEnv) StartCluster() error {
	args := []string{
		"container",
		"clusters",
		"create",
		g.cfg.K8s.ClusterName,
		"--machine-type", g.cfg.Gke.MachineType,
		"--num-nodes", strconv.Itoa(g.cfg.Gke.NumNodes),
	}
	args = g.projectZoneArgs(args)

	if err := g.executeCmd(args); err != nil {
		return err
	}

	return g.fetchCredentials()
}

// writes the cluster entry into the kubeconfig and makes it the current context
func (g *gkeEnv) fetchCredentials() error {
	args := []string{
		"container",
		"clusters",
		"get-credentials",
		g.cfg.K8s.ClusterName,
	}
	args = g.projectZoneArgs(args)
	return g.executeCmd(args)
}

// gke has no suspend, stop means delete
func (g *gkeEnv) StopCluster() error {
	return g.DeleteCluster()
}

func (g *gkeEnv) DeleteCluster() error {
	args := []string{
		"container",
		"clusters",
		"delete",
		g.cfg.K8s.ClusterName,
		"--quiet",
	}
	args = g.projectZoneArgs(args)
	return g.executeCmd(args)
}

func (g *gkeEnv) ClusterExists() (bool, error) {
	args := []string{
		"container",
		"clusters",
		"describe",
		g.cfg.K8s.ClusterName,
	}
	args = g.projectZoneArgs(args)
	_, err := system.ExecuteGetOutput(g.cfg.K8s.Tool, args...)
	return err == nil, nil
}

func NewGkeEnv(cfg *setup.Configuration) (K8sEnvironment, error) {
	return &gkeEnv{cfg: cfg}, nil
}
