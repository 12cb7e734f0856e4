package gateway_test

import (
	"testing"

	"github.com/sololabs/demos2/util/common"
)

func TestClusterHasReadyNode(t *testing.T) {
	if err := suit.CheckClusterNodes(); err != nil {
		t.Fatal(err)
	}
}

func TestGlooDeploymentsAvailable(t *testing.T) {
	if err := suit.CheckGlooDeployments(); err != nil {
		t.Fatal(err)
	}
}

func TestGatewayProxyPodsRunning(t *testing.T) {
	if err := suit.CheckPodsRunning(suit.Cfg.Gloo.Namespace, "^gateway-proxy-"); err != nil {
		t.Fatal(err)
	}
}

func TestPetstoreDeployed(t *testing.T) {
	deployment, err := suit.Client.GetDeployment(suit.Cfg.Petstore.Namespace, common.PetstoreDeployment)
	if err != nil {
		t.Fatal(err)
	}
	if deployment.Status.AvailableReplicas < 1 {
		t.Fatalf("petstore has %d available replicas", deployment.Status.AvailableReplicas)
	}
}

func TestPetstoreServiceExposed(t *testing.T) {
	if err := suit.CheckPetstoreService(); err != nil {
		t.Fatal(err)
	}
}

func TestPetstoreUpstreamDiscovered(t *testing.T) {
	if err := suit.CheckUpstreamDiscovered(); err != nil {
		t.Fatal(err)
	}
}

func TestVirtualServiceApplied(t *testing.T) {
	if err := suit.CheckVirtualService(); err != nil {
		t.Fatal(err)
	}
}
