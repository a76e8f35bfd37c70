package report

import (
	"time"
)

const (
	// DefaultEndpoint is the GitHub commit-status endpoint. Providers
	// with a compatible API work by overriding the template.
	DefaultEndpoint = "https://api.github.com/repos/{repo}/statuses/{sha}"

	// DefaultContext labels this service's status line among the others
	// attached to a commit.
	DefaultContext = "ci/slipway"

	// DefaultTimeout bounds the retries of a single status post.
	DefaultTimeout = 30 * time.Second
)

// Config locates the provider's commit-status endpoint. Endpoint is a
// template in which {repo} expands to the repository's full name and {sha}
// to the commit under report. TargetURL is a template with a {build_id}
// placeholder; it becomes the details link shown next to the status. An
// empty Endpoint disables status posting entirely.
type Config struct {
	Endpoint  string
	Token     string
	TargetURL string
	Context   string
	Timeout   time.Duration
}

// NewConfig returns GitHub-shaped defaults with no token; posting to a
// private repository needs Token set.
func NewConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Context:  DefaultContext,
		Timeout:  DefaultTimeout,
	}
}
