package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

const templateDir = "../../template"

func newGenerateConfig(t *testing.T) Configuration {
	t.Helper()
	var cfg Configuration
	cfg.Demo.OutputDirectory = t.TempDir()
	cfg.Kind.Config = filepath.Join(templateDir, "kind-cluster.yaml")
	cfg.Petstore.Template = filepath.Join(templateDir, "petstore.yaml")
	cfg.Waf.Template = filepath.Join(templateDir, "virtual-service.yaml")
	return cfg
}

func decodeYamlFile(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	rawContents, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(rawContents, &decoded))
	return decoded
}

func TestGenerateKindClusterConfig(t *testing.T) {
	cfg := newGenerateConfig(t)
	cfg.K8s.ClusterName = "demo-cluster"

	generatedPath, err := GenerateKindClusterConfig(&cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Demo.OutputDirectory, filepath.Dir(generatedPath), "rendered into the output dir")

	decoded := decodeYamlFile(t, generatedPath)
	assert.Equal(t, "Cluster", decoded["kind"])
	assert.Equal(t, "demo-cluster", decoded["name"])
}

func TestGeneratePetstoreYaml(t *testing.T) {
	cfg := newGenerateConfig(t)
	cfg.Petstore.Namespace = "default"
	cfg.Petstore.Image = "soloio/petstore-example:latest"

	generatedPath, err := GeneratePetstoreYaml(&cfg)
	require.NoError(t, err)

	require.NoError(t, ValidateYamlManifest(generatedPath))

	rawContents, err := os.ReadFile(generatedPath)
	require.NoError(t, err)
	assert.Contains(t, string(rawContents), "soloio/petstore-example:latest")
	assert.NotContains(t, string(rawContents), "{{.", "no unexpanded patterns left")
}

func TestGenerateVirtualServiceYaml(t *testing.T) {
	cfg := newGenerateConfig(t)
	cfg.Gloo.Namespace = "gloo-system"
	cfg.Petstore.Namespace = "default"
	cfg.Waf.BlockedUserAgent = "scammer"
	cfg.Waf.InterventionMessage = "blocked by the waf rule set"

	generatedPath, err := GenerateVirtualServiceYaml(&cfg)
	require.NoError(t, err)

	decoded := decodeYamlFile(t, generatedPath)
	assert.Equal(t, "VirtualService", decoded["kind"])
	assert.Equal(t, "gateway.solo.io/v1", decoded["apiVersion"])

	rawContents, err := os.ReadFile(generatedPath)
	require.NoError(t, err)
	assert.Contains(t, string(rawContents), "scammer")
	assert.Contains(t, string(rawContents), "blocked by the waf rule set")
	assert.Contains(t, string(rawContents), "default-petstore-8080")
}

func TestGenerateVirtualServiceRoutesToDiscoveredUpstream(t *testing.T) {
	cfg := newGenerateConfig(t)
	cfg.Gloo.Namespace = "gloo-system"
	cfg.Petstore.Namespace = "pets"
	cfg.Waf.BlockedUserAgent = "scammer"
	cfg.Waf.InterventionMessage = "blocked by the waf rule set"

	generatedPath, err := GenerateVirtualServiceYaml(&cfg)
	require.NoError(t, err)

	rawContents, err := os.ReadFile(generatedPath)
	require.NoError(t, err)
	assert.Contains(t, string(rawContents), cfg.GetPetstoreUpstreamName(),
		"the route targets the upstream name discovery will create")
	assert.NotContains(t, string(rawContents), "default-petstore-8080")
}

func TestGenerateSkipsPlainFiles(t *testing.T) {
	cfg := newGenerateConfig(t)

	plainPath := filepath.Join(t.TempDir(), "plain.yaml")
	require.NoError(t, os.WriteFile(plainPath, []byte("kind: Cluster\napiVersion: kind.x-k8s.io/v1alpha4\n"), 0644))
	cfg.Kind.Config = plainPath

	generatedPath, err := GenerateKindClusterConfig(&cfg)
	require.NoError(t, err)
	assert.Equal(t, plainPath, generatedPath, "non-template files are used as they are")
}
