package gateway_test

import (
	"testing"

	"github.com/sololabs/demos2/util/smoke"
)

func TestBlockedUserAgentGets403(t *testing.T) {
	runner, closer, err := suit.ForwardGatewayProxy()
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	check := smoke.Check{
		Name:       "waf blocks the denied user agent",
		Path:       "/api/pets",
		Headers:    map[string]string{"User-Agent": suit.Cfg.Waf.BlockedUserAgent},
		WantStatus: 403,
		WantInBody: suit.Cfg.Waf.InterventionMessage,
	}
	if err := runner.Run(check); err != nil {
		t.Fatal(err)
	}
}

func TestRegularUserAgentPasses(t *testing.T) {
	runner, closer, err := suit.ForwardGatewayProxy()
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	check := smoke.Check{
		Name:       "regular user agent passes the waf",
		Path:       "/api/pets",
		Headers:    map[string]string{"User-Agent": "curl/7.81.0"},
		WantStatus: 200,
	}
	if err := runner.Run(check); err != nil {
		t.Fatal(err)
	}
}
