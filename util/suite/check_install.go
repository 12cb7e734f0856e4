package suite

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/sololabs/demos2/util/auxi"
	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/k8s"
)

func (s *Suite) CheckGlooDeployments() error {
	deployments, err := s.Client.ListDeployments(s.Cfg.Gloo.Namespace)
	if err != nil {
		return err
	}

	deployedNames := k8s.GetDeploymentNames(deployments)
	for _, expected := range common.GlooDeployments {
		if !auxi.Contains(deployedNames, expected) {
			return fmt.Errorf("deployment %s not found in namespace %s (got: %s)",
				expected, s.Cfg.Gloo.Namespace, strings.Join(deployedNames, ","))
		}
	}

	for _, expected := range common.GlooDeployments {
		deployment, err := s.Client.GetDeployment(s.Cfg.Gloo.Namespace, expected)
		if err != nil {
			return err
		}
		if !k8s.IsDeploymentAvailable(deployment) {
			return fmt.Errorf("deployment %s/%s is not available", s.Cfg.Gloo.Namespace, expected)
		}
	}

	return nil
}

func (s *Suite) CheckPodsRunning(namespace string, pattern string) error {
	pods, err := s.Client.ListPodsWithFilter(namespace, pattern)
	if err != nil {
		return err
	}

	if len(pods.Items) == 0 {
		return fmt.Errorf("no pods matching '%s' in namespace %s", pattern, namespace)
	}

	for _, pod := range pods.Items {
		if pod.Status.Phase != corev1.PodRunning {
			return fmt.Errorf("pod %s/%s is in phase %s", namespace, pod.Name, pod.Status.Phase)
		}
	}

	return nil
}

func (s *Suite) CheckVirtualService() error {
	virtualServices, err := s.Client.ListVirtualServices(s.Cfg.Gloo.Namespace)
	if err != nil {
		return err
	}

	for _, virtualService := range virtualServices.Items {
		if virtualService.GetName() == common.VirtualServiceName {
			return nil
		}
	}

	return fmt.Errorf("virtual service %s not found in namespace %s",
		common.VirtualServiceName, s.Cfg.Gloo.Namespace)
}

func (s *Suite) CheckUpstreamDiscovered() error {
	upstreams, err := s.Client.ListUpstreams(s.Cfg.Gloo.Namespace)
	if err != nil {
		return err
	}

	upstreamName := s.Cfg.GetPetstoreUpstreamName()
	for _, upstream := range upstreams.Items {
		if upstream.GetName() == upstreamName {
			return nil
		}
	}

	return fmt.Errorf("upstream %s not discovered in namespace %s",
		upstreamName, s.Cfg.Gloo.Namespace)
}

func (s *Suite) CheckPetstoreService() error {
	service, err := s.Client.GetService(s.Cfg.Petstore.Namespace, common.PetstoreService)
	if err != nil {
		return err
	}

	for _, port := range service.Spec.Ports {
		if port.Port == common.PetstorePort {
			return nil
		}
	}

	return fmt.Errorf("service %s/%s doesn't expose port %d",
		s.Cfg.Petstore.Namespace, common.PetstoreService, common.PetstorePort)
}

func (s *Suite) CheckClusterNodes() error {
	nodes, err := s.Client.ListNodes()
	if err != nil {
		return err
	}

	for _, node := range nodes.Items {
		for _, condition := range node.Status.Conditions {
			if condition.Type == corev1.NodeReady && condition.Status == corev1.ConditionTrue {
				return nil
			}
		}
	}

	return fmt.Errorf("cluster has no ready nodes")
}
