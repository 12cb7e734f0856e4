package k8s

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/sololabs/demos2/util/system"
)

type Kubectl struct {
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

func (k Kubectl) run(trials int, args ...string) error {
	return tryRun(func(args ...string) error {
		return system.Execute("kubectl", args...)
	}, trials, args...)
}

func (k Kubectl) runGetOutput(args ...string) (output string, err error) {
	err = tryRun(func(args ...string) error {
		output, err = system.ExecuteGetOutput("kubectl", args...)
		return err
	}, 1, args...)
	return output, err
}

// applies are retried, right after an install the gloo validation webhook
// may not answer yet
func (k Kubectl) ApplyInNamespace(namespace string, path string) error {
	return k.run(MaxTrials, "apply", "-f", path, "-n", namespace)
}

func (k Kubectl) Delete(path string) error {
	return k.run(TryOnce, "delete", "-f", path, "--ignore-not-found")
}

func (k Kubectl) DeleteResource(namespace string, resource Kind, name string) error {
	return k.run(TryOnce, "delete", resource.String(), name, "-n", namespace, "--ignore-not-found")
}

func (k Kubectl) Describe(namespace string, resource Kind, name string) (string, error) {
	return k.runGetOutput("describe", resource.String(), name, "-n", namespace)
}

// target accepts anything 'kubectl logs' does, e.g. 'deployment/gateway-proxy'
func (k Kubectl) Logs(namespace string, target string) (string, error) {
	return k.runGetOutput("logs", target, "-n", namespace, "--tail", "50")
}

func (k Kubectl) RolloutStatus(namespace string, deployment string, timeout time.Duration) error {
	return k.run(TryOnce,
		"rollout", "status",
		"deployment/"+deployment,
		"-n", namespace,
		"--timeout", timeout.String())
}

func (k Kubectl) ClusterInfo() (string, error) {
	return k.runGetOutput("cluster-info")
}

func (k Kubectl) CurrentContext() (string, error) {
	output, err := k.runGetOutput("config", "current-context")
	return strings.TrimSpace(output), err
}

func (k Kubectl) UseContext(context string) error {
	return k.run(TryOnce, "config", "use-context", context)
}

// spawns 'kubectl port-forward' in the background and parses the local port
// it bound from the first line of its output
func (k Kubectl) PortForwardDeployment(namespace string, deployment string, localPort int, remotePort int) (*exec.Cmd, int, error) {
	cmd := exec.Command(
		"kubectl", "port-forward",
		fmt.Sprintf("deployment/%s", deployment),
		fmt.Sprintf("%d:%d", localPort, remotePort),
		"--address", "127.0.0.1",
		"-n", namespace)

	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, -1, err
	}
	err = cmd.Start()
	if err != nil {
		return nil, -1, err
	}

	var output []byte = make([]byte, 1024)
	_, err = reader.Read(output)
	if err != nil {
		return nil, -1, err
	}

	line := string(output)
	port, err := ParseForwardedPort(line)
	if err != nil {
		return nil, -1, err
	}

	return cmd, port, nil
}

// expected line format: 'Forwarding from 127.0.0.1:8080 -> 8080'
func ParseForwardedPort(line string) (int, error) {
	parsedOutput := strings.Split(line, "->")
	if len(parsedOutput) == 0 {
		return -1, fmt.Errorf("unexpected port-forward output '%s'", line)
	}

	rawPorts := parsedOutput[0]
	parsedPorts := strings.Split(rawPorts, ":")
	if len(parsedPorts) < 2 {
		return -1, fmt.Errorf("no local port in port-forward output '%s'", line)
	}

	portStr := strings.Trim(parsedPorts[len(parsedPorts)-1], " ")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return -1, err
	}

	return port, nil
}
