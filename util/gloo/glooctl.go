package gloo

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

type Glooctl struct {
}

const TryOnce = 1
const MaxTrials = 5

func tryRun(f func(...string) error, maxTrials int, args ...string) (err error) {
	for i := 0; i < maxTrials; i++ {
		err = f(args...)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	return err
}

func (g Glooctl) run(trials int, args ...string) error {
	return tryRun(func(args ...string) error {
		return system.Execute("glooctl", args...)
	}, trials, args...)
}

func (g Glooctl) runGetOutput(args ...string) (output string, err error) {
	err = tryRun(func(args ...string) error {
		output, err = system.ExecuteGetOutput("glooctl", args...)
		return err
	}, 1, args...)
	return output, err
}

func InstallArgs(cfg *setup.Configuration) []string {
	args := []string{"install", "gateway"}
	if cfg.Gloo.Enterprise {
		args = append(args, "enterprise", "--license-key", cfg.Gloo.LicenseKey)
	}
	args = append(args, "--namespace", cfg.Gloo.Namespace)
	if cfg.Gloo.Version != "" {
		args = append(args, "--version", cfg.Gloo.Version)
	}
	return args
}

func (g Glooctl) Install(cfg *setup.Configuration) error {
	return g.run(TryOnce, InstallArgs(cfg)...)
}

func (g Glooctl) Uninstall(namespace string) error {
	return g.run(TryOnce, "uninstall", "--all", "-n", namespace)
}

func (g Glooctl) Check(namespace string) error {
	return g.run(MaxTrials, "check", "-n", namespace)
}

func (g Glooctl) Version() (string, error) {
	return g.runGetOutput("version")
}

func (g Glooctl) ProxyUrl(namespace string) (string, error) {
	output, err := g.runGetOutput("proxy", "url", "-n", namespace, "--name", common.GatewayProxyDeployment)
	if err != nil {
		return "", err
	}
	return ParseProxyUrl(output)
}

// glooctl prints the url on the last non-empty line of its output
func ParseProxyUrl(output string) (string, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 0 {
		return "", errors.New("empty glooctl proxy url output")
	}

	url := strings.TrimSpace(lines[len(lines)-1])
	if !strings.Contains(url, common.SchemaSeparator) {
		return "", errors.Errorf("unexpected glooctl proxy url output '%s'", output)
	}
	return url, nil
}
