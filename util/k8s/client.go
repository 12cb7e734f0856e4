package k8s

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type Client struct {
	clientset *kubernetes.Clientset
	dynamic   dynamic.Interface
}

func NewClient(kubeCfg *rest.Config) (*Client, error) {
	clientset, err := kubernetes.NewForConfig(kubeCfg)
	if err != nil {
		return nil, err
	}

	dynamic, err := dynamic.NewForConfig(kubeCfg)
	if err != nil {
		return nil, err
	}

	return &Client{clientset, dynamic}, nil
}

func (c *Client) ListDeployments(namespace string) (*appsv1.DeploymentList, error) {
	return c.clientset.AppsV1().Deployments(namespace).List(context.Background(), metav1.ListOptions{})
}

func (c *Client) ListNodes() (*corev1.NodeList, error) {
	return c.clientset.CoreV1().Nodes().List(context.Background(), metav1.ListOptions{})
}

func (c *Client) ListPods(namespace string) (*corev1.PodList, error) {
	return c.clientset.CoreV1().Pods(namespace).List(context.Background(), metav1.ListOptions{})
}

func (c *Client) ListPodsWithFilter(namespace string, pattern string) (*corev1.PodList, error) {
	allPods, err := c.ListPods(namespace)
	if err != nil {
		return nil, err
	}

	rx, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	items := make([]corev1.Pod, 0)
	for _, pod := range allPods.Items {
		if rx.MatchString(pod.Name) {
			items = append(items, pod)
		}
	}

	filteredPods := corev1.PodList{
		TypeMeta: allPods.TypeMeta,
		ListMeta: allPods.ListMeta,
		Items:    items,
	}

	return &filteredPods, err
}

func (c *Client) GetService(namespace string, name string) (*corev1.Service, error) {
	return c.clientset.CoreV1().Services(namespace).Get(context.Background(), name, metav1.GetOptions{})
}

func (c *Client) GetDeployment(namespace string, name string) (*appsv1.Deployment, error) {
	return c.clientset.AppsV1().Deployments(namespace).Get(context.Background(), name, metav1.GetOptions{})
}

func (c *Client) HasDeployment(namespace string, name string) (bool, error) {
	deployment, err := c.GetDeployment(namespace, name)
	if err != nil {
		if IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return deployment != nil && deployment.GetName() == name, nil
}

func (c *Client) GetNamespace(name string) (*corev1.Namespace, error) {
	return c.clientset.CoreV1().Namespaces().Get(context.Background(), name, metav1.GetOptions{})
}

func (c *Client) HasNamespace(name string) (bool, error) {
	if name == "" {
		return false, nil
	}

	ns, err := c.GetNamespace(name)
	if err != nil {
		if IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return ns != nil && ns.GetName() == name, nil
}

func IsDeploymentAvailable(deployment *appsv1.Deployment) bool {
	for _, condition := range deployment.Status.Conditions {
		if condition.Type == appsv1.DeploymentAvailable {
			return condition.Status == corev1.ConditionTrue
		}
	}
	return false
}

func (c *Client) WaitForDeploymentAvailable(namespace string, name string, trials int, interval time.Duration) error {
	for i := 0; i < trials; i++ {
		deployment, err := c.GetDeployment(namespace, name)
		if err == nil && IsDeploymentAvailable(deployment) {
			return nil
		}
		if err != nil && !IsNotFoundError(err) {
			return err
		}
		time.Sleep(interval)
	}
	return errors.Errorf("deployment %s/%s didn't become available", namespace, name)
}

func (c *Client) listCustomResources(namespace string, group string, version string, resource Kind) (*unstructured.UnstructuredList, error) {
	gvr := schema.GroupVersionResource{
		Group:    group,
		Version:  version,
		Resource: resource.String(),
	}

	return c.dynamic.Resource(gvr).Namespace(namespace).List(context.Background(), metav1.ListOptions{})
}

func (c *Client) getCustomResource(namespace string, name string, group string, version string, resource Kind) (*unstructured.Unstructured, error) {
	gvr := schema.GroupVersionResource{
		Group:    group,
		Version:  version,
		Resource: resource.String(),
	}

	return c.dynamic.Resource(gvr).Namespace(namespace).Get(context.Background(), name, metav1.GetOptions{})
}

func (c *Client) ListVirtualServices(namespace string) (*unstructured.UnstructuredList, error) {
	return c.listCustomResources(namespace, GatewayGroup, GatewayVersion, CRDVirtualService)
}

func (c *Client) GetVirtualService(namespace string, name string) (*unstructured.Unstructured, error) {
	return c.getCustomResource(namespace, name, GatewayGroup, GatewayVersion, CRDVirtualService)
}

func (c *Client) ListUpstreams(namespace string) (*unstructured.UnstructuredList, error) {
	return c.listCustomResources(namespace, GlooGroup, GlooVersion, CRDUpstream)
}

func (c *Client) GetUpstream(namespace string, name string) (*unstructured.Unstructured, error) {
	return c.getCustomResource(namespace, name, GlooGroup, GlooVersion, CRDUpstream)
}
