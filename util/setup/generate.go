package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

func isTemplate(path string) (bool, error) {
	rawContents, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	const PatternPrefix = "{{."
	contents := string(rawContents)
	return strings.Contains(contents, PatternPrefix), nil
}

func generateFromTemplate(cfg *Configuration, templatePath string, data interface{}) (string, error) {
	isTempl, err := isTemplate(templatePath)
	if err != nil {
		return templatePath, err
	}
	if !isTempl {
		// as it is not a template no need to generate, just use the file as it is
		return templatePath, nil
	}

	filename := filepath.Base(templatePath)
	outputPath := cfg.GetOutputPath(filename)
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return outputPath, err
	}
	defer outputFile.Close()

	tmpl := template.Must(template.ParseFiles(templatePath))
	err = tmpl.Execute(outputFile, data)
	if err != nil {
		return outputPath, fmt.Errorf("cannot generate %s: %s", outputPath, err)
	}

	return outputPath, nil
}

func GenerateKindClusterConfig(cfg *Configuration) (string, error) {
	type KindClusterConfigData struct {
		ClusterName string
	}

	data := KindClusterConfigData{
		ClusterName: cfg.K8s.ClusterName,
	}

	return generateFromTemplate(cfg, cfg.Kind.Config, data)
}

func GeneratePetstoreYaml(cfg *Configuration) (string, error) {
	type PetstoreYamlData struct {
		Namespace string
		Image     string
	}

	data := PetstoreYamlData{
		Namespace: cfg.Petstore.Namespace,
		Image:     cfg.Petstore.Image,
	}

	return generateFromTemplate(cfg, cfg.Petstore.Template, data)
}

func GenerateVirtualServiceYaml(cfg *Configuration) (string, error) {
	type VirtualServiceYamlData struct {
		GlooNamespace       string
		PetstoreNamespace   string
		BlockedUserAgent    string
		InterventionMessage string
	}

	data := VirtualServiceYamlData{
		GlooNamespace:       cfg.Gloo.Namespace,
		PetstoreNamespace:   cfg.Petstore.Namespace,
		BlockedUserAgent:    cfg.Waf.BlockedUserAgent,
		InterventionMessage: cfg.Waf.InterventionMessage,
	}

	return generateFromTemplate(cfg, cfg.Waf.Template, data)
}
