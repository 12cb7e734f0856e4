package setup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sololabs/demos2/util/auxi"
	"github.com/sololabs/demos2/util/common"
)

type Configuration struct {
	Demo struct {
		RootDirectory   string
		OutputDirectory string
	}

	K8s struct {
		KubeConfig    string
		Tool          string
		ClusterName   string
		DeleteAtStart bool
		DeleteAtStop  bool
	}

	Kind struct {
		Config string
	}

	Cloud struct {
		Profiles string
	}

	Gke struct {
		Project     string
		Zone        string
		MachineType string
		NumNodes    int
	}

	Eks struct {
		Region   string
		NodeType string
		Nodes    int
	}

	Gloo struct {
		Install    bool
		Namespace  string
		Version    string
		Enterprise bool
		LicenseKey string
	}

	Petstore struct {
		Namespace string
		Image     string
		Template  string
	}

	Waf struct {
		BlockedUserAgent    string
		InterventionMessage string
		Template            string
	}

	Proxy struct {
		LocalPort int
		PidFile   string
	}

	Smoke struct {
		Trials      int
		IntervalSec int
		TimeoutSec  int
	}
}

func (c *Configuration) GetContextName() string {
	switch c.K8s.Tool {
	case common.ToolKind:
		return "kind-" + c.K8s.ClusterName
	case common.ToolK3d:
		return "k3d-" + c.K8s.ClusterName
	case common.ToolGcloud:
		return fmt.Sprintf("gke_%s_%s_%s", c.Gke.Project, c.Gke.Zone, c.K8s.ClusterName)
	case common.ToolEksctl:
		return fmt.Sprintf("%s.%s.eksctl.io", c.K8s.ClusterName, c.Eks.Region)
	default:
		return c.K8s.ClusterName
	}
}

func (c *Configuration) GetOutputPath(subpath string) string {
	return filepath.Join(c.Demo.OutputDirectory, subpath)
}

// gloo discovery names upstreams <namespace>-<service>-<port>
func (c *Configuration) GetPetstoreUpstreamName() string {
	return fmt.Sprintf("%s-%s-%d", c.Petstore.Namespace, common.PetstoreService, common.PetstorePort)
}

func (c *Configuration) GetPidFilePath() string {
	return c.GetOutputPath(c.Proxy.PidFile)
}

func (c *Configuration) GetProxyBaseUrl() string {
	return fmt.Sprintf("http://127.0.0.1:%d", c.Proxy.LocalPort)
}

func (c *Configuration) GetSmokeInterval() time.Duration {
	return time.Duration(c.Smoke.IntervalSec) * time.Second
}

func (c *Configuration) GetSmokeTimeout() time.Duration {
	return time.Duration(c.Smoke.TimeoutSec) * time.Second
}

func (c *Configuration) IsCloudTool() bool {
	return c.K8s.Tool == common.ToolGcloud || c.K8s.Tool == common.ToolEksctl
}

func (c *Configuration) CheckEnterpriseConfig() error {
	if !c.Gloo.Enterprise {
		return nil
	}
	if c.Gloo.LicenseKey == "" {
		return fmt.Errorf("enterprise install requires a license key (GLOO_LICENSE_KEY)")
	}
	return nil
}

func loadConfigFile(path string, initCfg Configuration) (Configuration, error) {
	cfgJson, err := os.ReadFile(path)
	if err != nil {
		return initCfg, err
	}

	cfg := initCfg
	err = json.Unmarshal(cfgJson, &cfg)
	if err != nil {
		return initCfg, auxi.FromJsonError(path, err)
	}

	return cfg, nil
}
