package executor

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/k8s"
	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

const ForwardTrials = 30
const ForwardInterval = time.Second

// spawn 'kubectl port-forward' to the gateway proxy and record its pid, so
// that 'stop' can clean it up later; a previous forward is terminated first
func startPortForward(cfg *setup.Configuration) error {
	if err := system.TerminatePidFile(cfg.GetPidFilePath()); err != nil {
		return err
	}

	kubectl := k8s.Kubectl{}
	cmd, port, err := kubectl.PortForwardDeployment(
		cfg.Gloo.Namespace,
		common.GatewayProxyDeployment,
		cfg.Proxy.LocalPort,
		common.GatewayProxyPort)
	if err != nil {
		return errors.Wrap(err, "cannot forward the gateway proxy port")
	}

	if err := system.WritePidFile(cfg.GetPidFilePath(), cmd.Process.Pid); err != nil {
		return err
	}

	if err := system.WaitForPort("127.0.0.1", port, ForwardTrials, ForwardInterval); err != nil {
		return err
	}

	log.Info.Printf("gateway proxy forwarded to port %d (pid %d)", port, cmd.Process.Pid)
	return nil
}

// reuse a live port-forward left by 'deploy', or spawn a fresh one
func ensurePortForward(cfg *setup.Configuration) error {
	pidFilePath := cfg.GetPidFilePath()
	if system.DoesFileExist(pidFilePath) {
		pid, err := system.ReadPidFile(pidFilePath)
		if err == nil && system.IsProcessAlive(pid) && system.IsPortOpen("127.0.0.1", cfg.Proxy.LocalPort) {
			return nil
		}
	}

	return startPortForward(cfg)
}
