package setup

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sololabs/demos2/util/common"
)

const listOfCommands = "[start|stop|deploy|smoke]"

func parseCommand(args []string) (common.Command, error) {
	if len(args) != 1 {
		return common.Unknown, fmt.Errorf("expected a single command %s but got '%s'", listOfCommands, strings.Join(args, " "))
	}
	cmd := args[0]
	switch cmd {
	case "start":
		return common.Start, nil
	case "stop":
		return common.Stop, nil
	case "deploy":
		return common.Deploy, nil
	case "smoke":
		return common.Smoke, nil
	default:
		return common.Unknown, fmt.Errorf("unknown command %s - expected one of %s", cmd, listOfCommands)
	}
}

func applyEnvVariable(envar string, setting *string) {
	enval, ok := os.LookupEnv(envar)
	if ok {
		*setting = enval
	}
}

func applyEnvVariableBool(envar string, setting *bool) {
	if enval, ok := os.LookupEnv(envar); ok {
		var err error
		*setting, err = strconv.ParseBool(enval)
		if err != nil {
			*setting = false
		}
	}
}

func applyEnvironment(initCfg Configuration) (Configuration, error) {
	cfg := initCfg

	applyEnvVariable("K8S_TOOL", &cfg.K8s.Tool)
	applyEnvVariable("DEMO_CLUSTER_NAME", &cfg.K8s.ClusterName)
	applyEnvVariable("DEMO_CLOUD_PROFILES", &cfg.Cloud.Profiles)

	applyEnvVariable("GLOO_NAMESPACE", &cfg.Gloo.Namespace)
	applyEnvVariable("GLOO_VERSION", &cfg.Gloo.Version)
	applyEnvVariable("GLOO_LICENSE_KEY", &cfg.Gloo.LicenseKey)
	applyEnvVariableBool("GLOO_ENTERPRISE", &cfg.Gloo.Enterprise)

	return cfg, nil
}

func parseCommandLine(initCfg Configuration, ignoreCommand bool) (common.Command, Configuration, error) {
	outputDirectory := flag.String("output-dir", initCfg.Demo.OutputDirectory, "output directory for generated yamls, the pid file and tmp files")

	kubeConfig := flag.String("kubecfg", initCfg.K8s.KubeConfig, "kube config path (if 'detect' it first tries ${KUBECONFIG}, then path ~/.kube/config)")
	tool := flag.String("tool", initCfg.K8s.Tool, "cluster provisioning tool [detect|kind|minikube|k3d|minishift|gcloud|eksctl]")
	clusterName := flag.String("cluster-name", initCfg.K8s.ClusterName, "name of the demo cluster")
	skipDeleteCluster := flag.Bool("skip-delete", false, "skip deleting cluster")

	kindConfig := flag.String("kind-config", initCfg.Kind.Config, "path to kind cluster config yaml or its template")
	cloudProfiles := flag.String("cloud-profiles", initCfg.Cloud.Profiles, "path to an ini file with gke/eks profiles")

	skipInstallGloo := flag.Bool("skip-install", !initCfg.Gloo.Install, "skip installing gloo")
	glooNamespace := flag.String("gloo-namespace", initCfg.Gloo.Namespace, "namespace gloo is installed into")
	glooVersion := flag.String("gloo-version", initCfg.Gloo.Version, "gloo version to install (empty means latest)")
	glooEnterprise := flag.Bool("enterprise", initCfg.Gloo.Enterprise, "install the enterprise edition (requires a license key)")
	glooLicenseKey := flag.String("license-key", initCfg.Gloo.LicenseKey, "license key for the enterprise edition")

	petstoreNamespace := flag.String("petstore-namespace", initCfg.Petstore.Namespace, "namespace the petstore app is deployed into")
	petstoreImage := flag.String("petstore-image", initCfg.Petstore.Image, "petstore application image")

	blockedUserAgent := flag.String("waf-blocked-agent", initCfg.Waf.BlockedUserAgent, "User-Agent denied by the waf rule")
	interventionMessage := flag.String("waf-message", initCfg.Waf.InterventionMessage, "custom waf intervention message")

	proxyPort := flag.Int("proxy-port", initCfg.Proxy.LocalPort, "local port forwarded to the gateway proxy")

	smokeTrials := flag.Int("smoke-trials", initCfg.Smoke.Trials, "max trials per smoke check")

	defaultUsage := flag.Usage
	flag.Usage = func() {
		defaultUsage()
		fmt.Fprintf(flag.CommandLine.Output(), "Command %s\n", listOfCommands)
	}

	flag.Parse()

	command := common.Unknown
	if !ignoreCommand {
		var err error
		command, err = parseCommand(flag.Args())
		if err != nil {
			return command, initCfg, err
		}
	}

	cfg := initCfg
	cfg.Demo.OutputDirectory = *outputDirectory

	cfg.K8s.KubeConfig = *kubeConfig
	cfg.K8s.Tool = *tool
	cfg.K8s.ClusterName = *clusterName
	if command == common.Start {
		cfg.K8s.DeleteAtStart = !*skipDeleteCluster
	} else if command == common.Stop {
		cfg.K8s.DeleteAtStop = !*skipDeleteCluster
	}

	cfg.Kind.Config = *kindConfig
	cfg.Cloud.Profiles = *cloudProfiles

	cfg.Gloo.Install = !*skipInstallGloo
	cfg.Gloo.Namespace = *glooNamespace
	cfg.Gloo.Version = *glooVersion
	cfg.Gloo.Enterprise = *glooEnterprise
	cfg.Gloo.LicenseKey = *glooLicenseKey

	cfg.Petstore.Namespace = *petstoreNamespace
	cfg.Petstore.Image = *petstoreImage

	cfg.Waf.BlockedUserAgent = *blockedUserAgent
	cfg.Waf.InterventionMessage = *interventionMessage

	cfg.Proxy.LocalPort = *proxyPort

	cfg.Smoke.Trials = *smokeTrials

	return command, cfg, nil
}
