package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestValidateYamlManifest(t *testing.T) {
	path := writeManifest(t, `apiVersion: v1
kind: Service
metadata:
  name: petstore
---
apiVersion: apps/v1
kind: Deployment
metadata:
  name: petstore
`)

	assert.NoError(t, ValidateYamlManifest(path))
}

func TestValidateYamlManifestBrokenYaml(t *testing.T) {
	path := writeManifest(t, "kind: [unterminated\n")

	assert.Error(t, ValidateYamlManifest(path))
}

func TestValidateYamlManifestMissingKind(t *testing.T) {
	path := writeManifest(t, `apiVersion: v1
metadata:
  name: petstore
`)

	assert.Error(t, ValidateYamlManifest(path))
}

func TestValidateYamlManifestEmptyDocsIgnored(t *testing.T) {
	path := writeManifest(t, `apiVersion: v1
kind: Service
---
`)

	assert.NoError(t, ValidateYamlManifest(path))
}
