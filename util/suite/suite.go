package suite

import (
	"os"

	"github.com/sololabs/demos2/util/k8s"
	"github.com/sololabs/demos2/util/setup"

	"k8s.io/client-go/tools/clientcmd"
)

type Suite struct {
	Cfg     setup.Configuration
	Client  *k8s.Client
	Kubectl k8s.Kubectl
	Dir     string
}

func CreateSuite() (*Suite, error) {
	suiteDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, _, err := setup.CreateConfiguration(true)
	if err != nil {
		return nil, err
	}

	kubeCfg, kubeErr := clientcmd.BuildConfigFromFlags("", cfg.K8s.KubeConfig)
	if kubeErr != nil {
		return nil, kubeErr
	}

	client, err := k8s.NewClient(kubeCfg)
	if err != nil {
		return nil, err
	}

	suite := Suite{
		Cfg:     cfg,
		Client:  client,
		Kubectl: k8s.Kubectl{},
		Dir:     suiteDir,
	}

	return &suite, nil
}
