package k8s

type Kind int

const GatewayGroup = "gateway.solo.io"
const GatewayVersion = "v1"

const GlooGroup = "gloo.solo.io"
const GlooVersion = "v1"

const (
	CRDUpstream Kind = iota
	CRDVirtualService
	Deploy
)

func (r Kind) String() string {
	switch r {
	case CRDUpstream:
		return "upstreams"
	case CRDVirtualService:
		return "virtualservices"
	case Deploy:
		return "deployments"
	default:
		return "shouldn't happen - unknown"
	}
}
