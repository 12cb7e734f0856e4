package setup

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

const yamlDocSeparator = "\n---"

// catch template rendering mistakes before the manifest reaches kubectl:
// every document must decode and carry apiVersion and kind
func ValidateYamlManifest(path string) error {
	rawContents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	for _, doc := range strings.Split(string(rawContents), yamlDocSeparator) {
		if strings.TrimSpace(doc) == "" {
			continue
		}

		var manifest map[string]interface{}
		if err := yaml.Unmarshal([]byte(doc), &manifest); err != nil {
			return errors.Wrapf(err, "manifest %s is not valid yaml", path)
		}

		for _, requiredField := range []string{"apiVersion", "kind"} {
			if _, ok := manifest[requiredField]; !ok {
				return errors.Errorf("manifest %s has a document without %s", path, requiredField)
			}
		}
	}

	return nil
}
