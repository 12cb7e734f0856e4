package executor

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"k8s.io/client-go/tools/clientcmd"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/gloo"
	"github.com/sololabs/demos2/util/k8s"
	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/setup"
)

const DeployTrials = 60
const DeployInterval = 5 * time.Second
const RolloutTimeout = 5 * time.Minute

type Deployer struct {
	cfg     *setup.Configuration
	kubectl k8s.Kubectl
	glooctl gloo.Glooctl
	client  *k8s.Client
}

func NewDeployer(cfg *setup.Configuration) (*Deployer, error) {
	kubeCfg, err := clientcmd.BuildConfigFromFlags("", cfg.K8s.KubeConfig)
	if err != nil {
		return nil, err
	}

	client, err := k8s.NewClient(kubeCfg)
	if err != nil {
		return nil, err
	}

	return &Deployer{cfg: cfg, client: client}, nil
}

// the provisioning tools write their own context names into the kubeconfig,
// make sure kubectl talks to the demo cluster
func (d *Deployer) ensureContext() {
	contextName := d.cfg.GetContextName()

	currentContext, err := d.kubectl.CurrentContext()
	if err == nil && currentContext == contextName {
		return
	}

	if err := d.kubectl.UseContext(contextName); err != nil {
		log.Info.Printf("cannot switch to context %s, staying on the current one: %s", contextName, err)
	}
}

func (d *Deployer) installGloo() error {
	if !d.cfg.Gloo.Install {
		return nil
	}

	installed, err := d.client.HasNamespace(d.cfg.Gloo.Namespace)
	if err != nil {
		return err
	}

	if !installed {
		if version, err := d.glooctl.Version(); err == nil {
			log.Info.Print(version)
		}
		if err := d.glooctl.Install(d.cfg); err != nil {
			return err
		}
	}

	for _, deployment := range common.GlooDeployments {
		err := d.client.WaitForDeploymentAvailable(d.cfg.Gloo.Namespace, deployment, DeployTrials, DeployInterval)
		if err != nil {
			d.logNamespacePods(d.cfg.Gloo.Namespace)
			return err
		}
	}

	return nil
}

func (d *Deployer) logNamespacePods(namespace string) {
	pods, err := d.client.ListPods(namespace)
	if err != nil {
		return
	}
	log.Info.Printf("pods in %s: %s", namespace, strings.Join(k8s.GetPodNames(pods), ", "))
}

func (d *Deployer) deployPetstore() error {
	petstoreYamlPath, err := setup.GeneratePetstoreYaml(d.cfg)
	if err != nil {
		return err
	}

	if err := setup.ValidateYamlManifest(petstoreYamlPath); err != nil {
		return err
	}

	if err := d.kubectl.ApplyInNamespace(d.cfg.Petstore.Namespace, petstoreYamlPath); err != nil {
		return err
	}

	err = d.kubectl.RolloutStatus(d.cfg.Petstore.Namespace, common.PetstoreDeployment, RolloutTimeout)
	if err != nil {
		if details, describeErr := d.kubectl.Describe(
			d.cfg.Petstore.Namespace, k8s.Deploy, common.PetstoreDeployment); describeErr == nil {
			log.Info.Print(details)
		}
		return err
	}

	return d.waitForUpstream(d.cfg.GetPetstoreUpstreamName())
}

// gloo discovery creates the upstream for the petstore service on its own,
// the virtual service cannot route until it appears
func (d *Deployer) waitForUpstream(name string) error {
	var err error
	for i := 0; i < DeployTrials; i++ {
		_, err = d.client.GetUpstream(d.cfg.Gloo.Namespace, name)
		if err == nil {
			return nil
		}
		if !k8s.IsNotFoundError(err) {
			return err
		}
		time.Sleep(DeployInterval)
	}
	return err
}

func (d *Deployer) applyVirtualService() error {
	virtualServiceYamlPath, err := setup.GenerateVirtualServiceYaml(d.cfg)
	if err != nil {
		return err
	}

	if err := setup.ValidateYamlManifest(virtualServiceYamlPath); err != nil {
		return err
	}

	if err := d.kubectl.ApplyInNamespace(d.cfg.Gloo.Namespace, virtualServiceYamlPath); err != nil {
		return err
	}

	_, err = d.client.GetVirtualService(d.cfg.Gloo.Namespace, common.VirtualServiceName)
	return err
}

func (d *Deployer) run() error {
	d.ensureContext()

	if err := d.installGloo(); err != nil {
		return err
	}

	if err := d.deployPetstore(); err != nil {
		return err
	}

	if err := d.applyVirtualService(); err != nil {
		return err
	}

	// with -skip-install there was no wait for the gloo deployments, make
	// sure the proxy is actually there before forwarding to it
	hasProxy, err := d.client.HasDeployment(d.cfg.Gloo.Namespace, common.GatewayProxyDeployment)
	if err != nil {
		return err
	}
	if !hasProxy {
		return errors.Errorf("deployment %s/%s doesn't exist, is gloo installed?",
			d.cfg.Gloo.Namespace, common.GatewayProxyDeployment)
	}

	return startPortForward(d.cfg)
}

func deploy(cfg *setup.Configuration) error {
	deployer, err := NewDeployer(cfg)
	if err != nil {
		return err
	}
	return deployer.run()
}
