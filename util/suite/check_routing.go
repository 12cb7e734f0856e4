package suite

import (
	"os/exec"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/smoke"
	"github.com/sololabs/demos2/util/system"
)

// forward the gateway proxy for the duration of a test, the returned closer
// stops the spawned process
func (s *Suite) ForwardGatewayProxy() (*smoke.Runner, func(), error) {
	cmd, port, err := s.Kubectl.PortForwardDeployment(
		s.Cfg.Gloo.Namespace,
		common.GatewayProxyDeployment,
		0,
		common.GatewayProxyPort)
	if err != nil {
		return nil, nil, err
	}
	closer := func() { stopForward(cmd) }

	if err := system.WaitForPort("127.0.0.1", port, 30, s.Cfg.GetSmokeInterval()); err != nil {
		closer()
		return nil, nil, err
	}

	runner := smoke.NewRunner(
		smoke.BaseUrl("127.0.0.1", port),
		s.Cfg.Smoke.Trials,
		s.Cfg.GetSmokeInterval(),
		s.Cfg.GetSmokeTimeout())

	return runner, closer, nil
}

func stopForward(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
	_ = cmd.Wait()
}
