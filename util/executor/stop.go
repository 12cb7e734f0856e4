package executor

import (
	"github.com/hashicorp/go-multierror"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/gloo"
	"github.com/sololabs/demos2/util/k8s"
	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/system"
)

// teardown continues through failures and reports them all at the end
func stop(cfg *setup.Configuration) error {
	var result *multierror.Error

	result = multierror.Append(result, system.TerminatePidFile(cfg.GetPidFilePath()))

	if cfg.K8s.DeleteAtStop {
		result = multierror.Append(result, deleteCluster(cfg))
		return result.ErrorOrNil()
	}

	// the cluster stays around, remove the demo pieces one by one
	result = multierror.Append(result, undeploy(cfg))

	env, err := k8s.GetEnvironment(cfg)
	if err != nil {
		result = multierror.Append(result, err)
		return result.ErrorOrNil()
	}
	result = multierror.Append(result, env.StopCluster())

	return result.ErrorOrNil()
}

func undeploy(cfg *setup.Configuration) error {
	var result *multierror.Error

	kubectl := k8s.Kubectl{}
	result = multierror.Append(result,
		kubectl.DeleteResource(cfg.Gloo.Namespace, k8s.CRDVirtualService, common.VirtualServiceName))

	petstoreYamlPath, err := setup.GeneratePetstoreYaml(cfg)
	if err != nil {
		result = multierror.Append(result, err)
	} else {
		result = multierror.Append(result, kubectl.Delete(petstoreYamlPath))
	}

	if cfg.Gloo.Install {
		glooctl := gloo.Glooctl{}
		result = multierror.Append(result, glooctl.Uninstall(cfg.Gloo.Namespace))
	}

	return result.ErrorOrNil()
}

// a nonexistent cluster is not a teardown failure
func deleteCluster(cfg *setup.Configuration) error {
	env, err := k8s.GetEnvironment(cfg)
	if err != nil {
		return err
	}

	exists, err := env.ClusterExists()
	if err != nil {
		return err
	}
	if !exists {
		log.Info.Printf("cluster %s doesn't exist, nothing to delete", cfg.K8s.ClusterName)
		return nil
	}

	return env.DeleteCluster()
}
