package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/system"
)

const DefaultAutoDetectValue = "detect"

var supportedTools = []string{
	common.ToolKind,
	common.ToolMinikube,
	common.ToolK3d,
	common.ToolMinishift,
	common.ToolGcloud,
	common.ToolEksctl,
}

func isSupportedTool(tool string) bool {
	for _, supported := range supportedTools {
		if tool == supported {
			return true
		}
	}
	return false
}

func findCommand(possibleCommands []string) (string, error) {
	for _, cmd := range possibleCommands {
		if system.DoesCommandExist(cmd) {
			return cmd, nil
		}
	}
	return "", fmt.Errorf("cannot find any of the following commands: %s", strings.Join(possibleCommands, ","))
}

func resolveTool(cfgTool string) (string, error) {
	tool := strings.ToLower(cfgTool)
	if tool == DefaultAutoDetectValue {
		return findCommand(supportedTools)
	}

	if !isSupportedTool(tool) {
		return "", fmt.Errorf("unsupported tool %s, expected one of: %s", cfgTool, strings.Join(supportedTools, ","))
	}

	if !system.DoesCommandExist(tool) {
		return "", fmt.Errorf("command not found: %s", tool)
	}

	return tool, nil
}

func getDefaultKubeConfigPath() string {
	const KubeConfigEnvVar = "KUBECONFIG"
	kubeConfigPath := os.Getenv(KubeConfigEnvVar)
	if kubeConfigPath != "" {
		return kubeConfigPath
	}

	const KubeConfigHomePath = "~/.kube/config"
	return KubeConfigHomePath
}

func resolveK8sKubeConfig(cfgK8sKubeConfig string, baseDir string) (string, error) {
	var kubeConfigPath string
	if cfgK8sKubeConfig == DefaultAutoDetectValue {
		kubeConfigPath = getDefaultKubeConfigPath()
	} else {
		kubeConfigPath = cfgK8sKubeConfig
	}
	return system.ResolveFile(baseDir, kubeConfigPath, false)
}

func verifyRequiredCommands(cfg Configuration) error {
	requiredCommands := []string{"kubectl"}
	if cfg.Gloo.Install {
		requiredCommands = append(requiredCommands, "glooctl")
	}

	for _, cmd := range requiredCommands {
		if !system.DoesCommandExist(cmd) {
			return fmt.Errorf("required command not found: %s", cmd)
		}
	}
	return nil
}

func verifyPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("incorrect port %d", port)
	}
	return nil
}

// empty names fall back to the demo defaults, an empty petstore namespace
// would otherwise render namespace: "" into the manifests
func applyDefaultNames(cfg Configuration) Configuration {
	if cfg.K8s.ClusterName == "" {
		cfg.K8s.ClusterName = common.DefaultClusterName
	}
	if cfg.Gloo.Namespace == "" {
		cfg.Gloo.Namespace = common.DefaultGlooNamespace
	}
	if cfg.Petstore.Namespace == "" {
		cfg.Petstore.Namespace = common.PetstoreNamespace
	}
	return cfg
}

func resolveSettings(cfg Configuration) (Configuration, error) {
	var err error

	cfg = applyDefaultNames(cfg)

	rootDirectory := cfg.Demo.RootDirectory

	cfg.Demo.OutputDirectory, err = system.ResolveDirectory(rootDirectory, cfg.Demo.OutputDirectory, false)
	if err != nil {
		return cfg, err
	}

	// k8s
	cfg.K8s.KubeConfig, err = resolveK8sKubeConfig(cfg.K8s.KubeConfig, rootDirectory)
	if err != nil {
		return cfg, err
	}

	cfg.K8s.Tool, err = resolveTool(cfg.K8s.Tool)
	if err != nil {
		return cfg, err
	}

	if err = verifyRequiredCommands(cfg); err != nil {
		return cfg, err
	}

	// kind
	if cfg.K8s.Tool == common.ToolKind && cfg.Kind.Config != "" {
		cfg.Kind.Config, err = system.ResolveFile(rootDirectory, cfg.Kind.Config, true)
		if err != nil {
			return cfg, err
		}
	}

	// cloud
	if cfg.IsCloudTool() {
		cfg.Cloud.Profiles, err = system.ResolveFile(rootDirectory, cfg.Cloud.Profiles, true)
		if err != nil {
			return cfg, err
		}

		cfg, err = loadCloudProfiles(cfg)
		if err != nil {
			return cfg, err
		}
	}

	// gloo
	if err = cfg.CheckEnterpriseConfig(); err != nil {
		return cfg, err
	}

	cfg.Petstore.Template, err = system.ResolveFile(rootDirectory, cfg.Petstore.Template, true)
	if err != nil {
		return cfg, err
	}

	cfg.Waf.Template, err = system.ResolveFile(rootDirectory, cfg.Waf.Template, true)
	if err != nil {
		return cfg, err
	}

	if err = verifyPort(cfg.Proxy.LocalPort); err != nil {
		return cfg, err
	}

	return cfg, nil
}
