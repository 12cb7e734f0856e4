package executor

import (
	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/gloo"
	"github.com/sololabs/demos2/util/k8s"
	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/setup"
	"github.com/sololabs/demos2/util/smoke"
)

func DemoChecks(cfg *setup.Configuration) []smoke.Check {
	return []smoke.Check{
		{
			Name:       "petstore route",
			Path:       "/api/pets",
			WantStatus: 200,
			WantInBody: `"Dog"`,
		},
		{
			Name:       "petstore pet by id",
			Path:       "/api/pets/1",
			WantStatus: 200,
		},
		{
			Name:       "waf blocks the denied user agent",
			Path:       "/api/pets",
			Headers:    map[string]string{"User-Agent": cfg.Waf.BlockedUserAgent},
			WantStatus: 403,
			WantInBody: cfg.Waf.InterventionMessage,
		},
	}
}

func runSmokeChecks(cfg *setup.Configuration) error {
	if err := ensurePortForward(cfg); err != nil {
		return err
	}

	glooctl := gloo.Glooctl{}
	if err := glooctl.Check(cfg.Gloo.Namespace); err != nil {
		return err
	}

	if url, err := glooctl.ProxyUrl(cfg.Gloo.Namespace); err == nil {
		log.Info.Printf("gateway proxy reachable at %s", url)
	}

	runner := smoke.NewRunner(
		cfg.GetProxyBaseUrl(),
		cfg.Smoke.Trials,
		cfg.GetSmokeInterval(),
		cfg.GetSmokeTimeout())

	if err := runner.RunAll(DemoChecks(cfg)); err != nil {
		kubectl := k8s.Kubectl{}
		if logs, logsErr := kubectl.Logs(cfg.Gloo.Namespace,
			"deployment/"+common.GatewayProxyDeployment); logsErr == nil {
			log.Info.Print(logs)
		}
		return err
	}

	log.Info.Print("all smoke checks passed")
	return nil
}
