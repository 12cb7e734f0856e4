package smoke

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sololabs/demos2/util/log"
)

type Check struct {
	Name       string
	Path       string
	Headers    map[string]string
	WantStatus int
	WantInBody string
}

func BaseUrl(host string, port int) string {
	return fmt.Sprintf("http://%s:%d", host, port)
}

type Runner struct {
	BaseUrl  string
	Trials   int
	Interval time.Duration
	client   *http.Client
}

func NewRunner(baseUrl string, trials int, interval time.Duration, timeout time.Duration) *Runner {
	return &Runner{
		BaseUrl:  strings.TrimRight(baseUrl, "/"),
		Trials:   trials,
		Interval: interval,
		client:   &http.Client{Timeout: timeout},
	}
}

func (r *Runner) performRequest(check Check) error {
	request, err := http.NewRequest(http.MethodGet, r.BaseUrl+check.Path, nil)
	if err != nil {
		return err
	}
	for key, value := range check.Headers {
		request.Header.Set(key, value)
	}

	response, err := r.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	rawBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode != check.WantStatus {
		return errors.Errorf("%s: got status %d, want %d", check.Name, response.StatusCode, check.WantStatus)
	}

	if check.WantInBody != "" && !strings.Contains(string(rawBody), check.WantInBody) {
		return errors.Errorf("%s: body doesn't contain '%s': %s", check.Name, check.WantInBody, string(rawBody))
	}

	return nil
}

func (r *Runner) Run(check Check) (err error) {
	log.Info.Printf("smoke check '%s': GET %s%s expecting %d", check.Name, r.BaseUrl, check.Path, check.WantStatus)
	for i := 0; i < r.Trials; i++ {
		err = r.performRequest(check)
		if err == nil {
			return nil
		}
		time.Sleep(r.Interval)
	}
	return errors.Wrapf(err, "smoke check '%s' failed after %d trials", check.Name, r.Trials)
}

func (r *Runner) RunAll(checks []Check) error {
	for _, check := range checks {
		if err := r.Run(check); err != nil {
			return err
		}
	}
	return nil
}
