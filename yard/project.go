package yard

import (
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/gobwas/glob"
)

// Project configures builds for one source repository. A project exclusively
// owns its secrets and its builds.
type Project struct {
	ID   int    `json:"id"`
	Name string `json:"name"` // full repository name, e.g. "org/repo"

	CloneURL      string `json:"clone_url"`
	DefaultBranch string `json:"default_branch"`

	// BranchFilter is a glob restricting which branches may build. Empty
	// matches every branch. Alternates use brace syntax, e.g.
	// "{main,release/*}".
	BranchFilter string `json:"branch_filter,omitempty"`

	BuildPullRequests bool `json:"build_pull_requests"`

	MaxDuration time.Duration `json:"max_duration"`

	// Image overrides the server-wide default container image.
	Image string `json:"image,omitempty"`

	// Profile names a built-in bundle of defaults applied to blank settings.
	Profile string `json:"profile,omitempty"`

	Phases          []Phase  `json:"phases,omitempty"`
	RequiredSecrets []string `json:"required_secrets,omitempty"`

	// AllowDocker mounts the host container-engine socket into the build
	// container (Docker-in-Docker).
	AllowDocker bool `json:"allow_docker"`

	NotifyOnFailure bool   `json:"notify_on_failure"`
	Owner           string `json:"owner,omitempty"`
}

// BranchMatches reports whether a branch passes the project's branch filter.
func (p Project) BranchMatches(branch string) (bool, error) {
	if p.BranchFilter == "" {
		return true, nil
	}

	g, err := glob.Compile(p.BranchFilter)
	if err != nil {
		return false, fmt.Errorf("compile branch filter %q: %w", p.BranchFilter, err)
	}

	return g.Match(branch), nil
}

// Profile is a named bundle of project defaults.
type Profile struct {
	Image  string
	Phases []Phase
}

// BuiltinProfiles are the profiles a project may name. Profile values only
// fill settings the project leaves blank.
var BuiltinProfiles = map[string]Profile{
	"go": {
		Image: "golang:1.25",
		Phases: []Phase{
			{Name: "build", Run: "go build ./..."},
			{Name: "test", Run: "go test ./..."},
		},
	},
	"node": {
		Image: "node:22",
		Phases: []Phase{
			{Name: "install", Run: "npm ci"},
			{Name: "test", Run: "npm test"},
		},
	},
	"generic": {
		Image: "alpine:3.20",
		Phases: []Phase{
			{Name: "build", Run: "./build.sh"},
		},
	},
}

// ApplyProfile fills blank project settings from the named built-in profile.
// Explicit project settings always win.
func (p *Project) ApplyProfile() error {
	if p.Profile == "" {
		return nil
	}

	profile, found := BuiltinProfiles[p.Profile]
	if !found {
		return ValidationError{Reason: fmt.Sprintf("unknown build profile %q", p.Profile)}
	}

	defaults := Project{
		Image:  profile.Image,
		Phases: profile.Phases,
	}

	return mergo.Merge(p, defaults)
}
