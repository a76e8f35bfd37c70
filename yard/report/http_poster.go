package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/retryhttp"
	"golang.org/x/oauth2"
)

// HTTPPoster posts commit statuses to the endpoint named by Config. Posts
// carry the configured bearer token and ride a retrying transport, so
// transient provider outages are absorbed up to the configured timeout.
type HTTPPoster struct {
	client      *http.Client
	endpoint    string
	statusLabel string
}

func NewHTTPPoster(logger lager.Logger, config Config) *HTTPPoster {
	var transport http.RoundTripper = http.DefaultTransport
	if config.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token}),
			Base:   transport,
		}
	}

	return &HTTPPoster{
		client: &http.Client{
			Transport: &retryhttp.RetryRoundTripper{
				Logger:         logger.Session("retryable-http-client"),
				BackOffFactory: retryhttp.NewExponentialBackOffFactory(config.Timeout),
				RoundTripper:   transport,
				Retryer:        &retryhttp.DefaultRetryer{},
			},
		},
		endpoint:    config.Endpoint,
		statusLabel: config.Context,
	}
}

type statusPayload struct {
	State       string `json:"state"`
	TargetURL   string `json:"target_url,omitempty"`
	Description string `json:"description,omitempty"`
	Context     string `json:"context,omitempty"`
}

func (p *HTTPPoster) Post(ctx context.Context, status CommitStatus) (int, error) {
	url := strings.NewReplacer(
		"{repo}", status.Repo,
		"{sha}", status.SHA,
	).Replace(p.endpoint)

	payload, err := json.Marshal(statusPayload{
		State:       string(status.State),
		TargetURL:   status.TargetURL,
		Description: status.Description,
		Context:     p.statusLabel,
	})
	if err != nil {
		return 0, fmt.Errorf("encode status: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build status request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("provider replied %s", resp.Status)
	}

	return resp.StatusCode, nil
}
