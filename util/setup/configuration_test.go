package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sololabs/demos2/util/common"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "some.cfg")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"K8s": {"Tool": "kind", "ClusterName": "demo-cluster"},
		"Gloo": {"Namespace": "gloo-system"}
	}`)

	var initCfg Configuration
	cfg, err := loadConfigFile(path, initCfg)
	require.NoError(t, err)

	assert.Equal(t, "kind", cfg.K8s.Tool)
	assert.Equal(t, "demo-cluster", cfg.K8s.ClusterName)
	assert.Equal(t, "gloo-system", cfg.Gloo.Namespace)
}

func TestLoadConfigFileBrokenJson(t *testing.T) {
	path := writeConfigFile(t, `{"K8s": {`)

	var initCfg Configuration
	_, err := loadConfigFile(path, initCfg)
	assert.Error(t, err)
}

func TestLoadConfigFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"K8s": {"Tool": "k3d"}}`)

	var initCfg Configuration
	initCfg.K8s.ClusterName = "demo"
	initCfg.Proxy.LocalPort = 8080

	cfg, err := loadConfigFile(path, initCfg)
	require.NoError(t, err)

	assert.Equal(t, "k3d", cfg.K8s.Tool)
	assert.Equal(t, "demo", cfg.K8s.ClusterName)
	assert.Equal(t, 8080, cfg.Proxy.LocalPort)
}

func TestGetContextName(t *testing.T) {
	var tests = []struct {
		name    string
		prepare func(cfg *Configuration)
		want    string
	}{
		{
			name: "kind prefixes the cluster name",
			prepare: func(cfg *Configuration) {
				cfg.K8s.Tool = common.ToolKind
			},
			want: "kind-demo",
		},
		{
			name: "k3d prefixes the cluster name",
			prepare: func(cfg *Configuration) {
				cfg.K8s.Tool = common.ToolK3d
			},
			want: "k3d-demo",
		},
		{
			name: "minikube uses the plain cluster name",
			prepare: func(cfg *Configuration) {
				cfg.K8s.Tool = common.ToolMinikube
			},
			want: "demo",
		},
		{
			name: "gke context carries project and zone",
			prepare: func(cfg *Configuration) {
				cfg.K8s.Tool = common.ToolGcloud
				cfg.Gke.Project = "acme"
				cfg.Gke.Zone = "europe-west1-b"
			},
			want: "gke_acme_europe-west1-b_demo",
		},
		{
			name: "eks context carries the region",
			prepare: func(cfg *Configuration) {
				cfg.K8s.Tool = common.ToolEksctl
				cfg.Eks.Region = "eu-west-1"
			},
			want: "demo.eu-west-1.eksctl.io",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var cfg Configuration
			cfg.K8s.ClusterName = "demo"
			test.prepare(&cfg)
			assert.Equal(t, test.want, cfg.GetContextName())
		})
	}
}

func TestGetPetstoreUpstreamName(t *testing.T) {
	var cfg Configuration

	cfg.Petstore.Namespace = "default"
	assert.Equal(t, "default-petstore-8080", cfg.GetPetstoreUpstreamName())

	cfg.Petstore.Namespace = "pets"
	assert.Equal(t, "pets-petstore-8080", cfg.GetPetstoreUpstreamName())
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv("K8S_TOOL", "minikube")
	t.Setenv("DEMO_CLUSTER_NAME", "env-cluster")
	t.Setenv("GLOO_NAMESPACE", "env-gloo")
	t.Setenv("GLOO_ENTERPRISE", "true")

	var initCfg Configuration
	initCfg.K8s.Tool = "kind"
	initCfg.K8s.ClusterName = "demo"

	cfg, err := applyEnvironment(initCfg)
	require.NoError(t, err)

	assert.Equal(t, "minikube", cfg.K8s.Tool)
	assert.Equal(t, "env-cluster", cfg.K8s.ClusterName)
	assert.Equal(t, "env-gloo", cfg.Gloo.Namespace)
	assert.True(t, cfg.Gloo.Enterprise)
}

func TestCheckEnterpriseConfig(t *testing.T) {
	var cfg Configuration
	assert.NoError(t, cfg.CheckEnterpriseConfig(), "oss needs no license")

	cfg.Gloo.Enterprise = true
	assert.Error(t, cfg.CheckEnterpriseConfig())

	cfg.Gloo.LicenseKey = "some-key"
	assert.NoError(t, cfg.CheckEnterpriseConfig())
}

func TestGetProxyBaseUrl(t *testing.T) {
	var cfg Configuration
	cfg.Proxy.LocalPort = 8080
	assert.Equal(t, "http://127.0.0.1:8080", cfg.GetProxyBaseUrl())
}
