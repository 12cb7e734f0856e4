package common

const DefaultClusterName = "demo"

const DefaultGlooNamespace = "gloo-system"

const PetstoreNamespace = "default"
const PetstoreDeployment = "petstore"
const PetstoreService = "petstore"
const PetstorePort = 8080

const GatewayProxyDeployment = "gateway-proxy"
const GatewayProxyPort = 8080

const VirtualServiceName = "default"

const SchemaSeparator = "://"

const ToolKind = "kind"
const ToolMinikube = "minikube"
const ToolK3d = "k3d"
const ToolMinishift = "minishift"
const ToolGcloud = "gcloud"
const ToolEksctl = "eksctl"

// deployments expected to come up after a gloo gateway install
var GlooDeployments = []string{"gloo", "discovery", "gateway", "gateway-proxy"}
